// 12 Oct 2026

package trnascan

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/chitrna/pkg/common"
)

var gzipMagic = []byte{0x1f, 0x8b}

// splitLine takes one line, with or without its newline, and
// breaks it into fields.
func splitLine(line string, layout Layout, n int) (Record, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, "\t")
	if len(fields) < layout.MinFields() {
		return Record{}, &ParseError{
			Line: n, Text: line, NField: len(fields), MinWant: layout.MinFields(),
		}
	}
	return Record{fields: fields, isoCol: layout.IsotypeCol, line: n}, nil
}

// readLines does the work for all the readers. path is only for
// error messages.
func readLines(rdr io.Reader, layout Layout, path string) ([]Record, error) {
	br := bufio.NewReader(rdr)
	var recs []Record
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &common.ResourceError{Path: path, Op: "read", Err: err}
		}
		if line == "" { // only at the end, since ReadString keeps the \n
			break
		}
		if n > NHeader {
			r, perr := splitLine(line, layout, n)
			if perr != nil {
				return nil, perr
			}
			recs = append(recs, r)
		}
		if err == io.EOF {
			break
		}
	}
	return recs, nil
}

// maybeGunzip looks at the first bytes of a stream. If it is gzip
// compressed, it returns a decompressing reader. The close function
// is never nil.
func maybeGunzip(rdr io.Reader, path string) (io.Reader, func(), error) {
	br := bufio.NewReader(rdr)
	if head, _ := br.Peek(len(gzipMagic)); !bytes.Equal(head, gzipMagic) {
		return br, func() {}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, nil, &common.ResourceError{Path: path, Op: "gunzip", Err: err}
	}
	return zr, func() { zr.Close() }, nil
}

// Read gets records from rdr. The first NHeader lines are dropped
// without looking at them. A file with no more than NHeader lines
// gives no records and no error. Any line without enough fields
// gives a *ParseError and no records at all.
func Read(rdr io.Reader, layout Layout) ([]Record, error) {
	return readLines(rdr, layout, "")
}

// ReadMaybeGz is Read, but also takes gzip compressed input.
func ReadMaybeGz(rdr io.Reader, layout Layout, path string) ([]Record, error) {
	r, closer, err := maybeGunzip(rdr, path)
	if err != nil {
		return nil, err
	}
	defer closer()
	return readLines(r, layout, path)
}

// Readfile reads the file fname. If fname is empty or "-", it reads
// standard input. A real file is memory mapped rather than read
// through a buffer. It may be gzip compressed.
func Readfile(fname string, layout Layout) ([]Record, error) {
	if fname == "" || fname == "-" {
		return ReadMaybeGz(os.Stdin, layout, "-")
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, &common.ResourceError{Path: fname, Op: "open", Err: err}
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, &common.ResourceError{Path: fname, Op: "stat", Err: err}
	}
	if fi.IsDir() {
		return nil, &common.ResourceError{Path: fname, Op: "open", Err: errors.New("is a directory")}
	}
	if fi.Size() == 0 { // mmap will not take a zero length file
		return nil, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, &common.ResourceError{Path: fname, Op: "mmap", Err: err}
	}
	defer mm.Unmap()

	// ReadString copies, so nothing we return points into the mapping.
	return ReadMaybeGz(bytes.NewReader(mm), layout, fname)
}
