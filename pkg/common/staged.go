// 12 Oct 2026

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrIsDir is returned when a directory sits where an output file
// should go.
var ErrIsDir = errors.New("is a directory")

const (
	pending   = iota // written, not yet renamed
	committed        // renamed, old version may be kept as backup
	finished         // aborted, rolled back or released
)

// Staged is an output file written under a temporary name in the
// same directory as its destination. It only takes the real name
// when its StageSet is committed, so a run that fails half way
// through does not leave a truncated file behind.
type Staged struct {
	final  string
	fp     *os.File
	backup string // previous version of final, moved aside by commit
	state  int
}

// Stage creates the temporary file for fname.
func Stage(fname string) (*Staged, error) {
	dir, base := filepath.Split(fname)
	if dir == "" {
		dir = "."
	}
	fp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return nil, &ResourceError{Path: fname, Op: "create", Err: err}
	}
	return &Staged{final: fname, fp: fp}, nil
}

// Name is the destination, not the temporary name.
func (s *Staged) Name() string { return s.final }

func (s *Staged) Write(p []byte) (int, error) {
	n, err := s.fp.Write(p)
	if err != nil {
		return n, &ResourceError{Path: s.final, Op: "write", Err: err}
	}
	return n, nil
}

// check refuses a destination that the rename could not replace.
func (s *Staged) check() error {
	fi, err := os.Lstat(s.final)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return &ResourceError{Path: s.final, Op: "stat", Err: err}
	case fi.IsDir():
		return &ResourceError{Path: s.final, Op: "replace", Err: ErrIsDir}
	}
	return nil
}

// commit closes the temporary file, moves any old version of the
// destination aside and renames the new one into place. On failure
// the old version is back where it was.
func (s *Staged) commit() error {
	if err := s.fp.Close(); err != nil {
		return &ResourceError{Path: s.final, Op: "close", Err: err}
	}
	if _, err := os.Lstat(s.final); err == nil {
		dir, base := filepath.Split(s.final)
		if dir == "" {
			dir = "."
		}
		bak, err := os.CreateTemp(dir, "."+base+".bak*")
		if err != nil {
			return &ResourceError{Path: s.final, Op: "backup", Err: err}
		}
		bak.Close()
		if err := os.Rename(s.final, bak.Name()); err != nil {
			os.Remove(bak.Name())
			return &ResourceError{Path: s.final, Op: "backup", Err: err}
		}
		s.backup = bak.Name()
	}
	if err := os.Rename(s.fp.Name(), s.final); err != nil {
		s.restore()
		return &ResourceError{Path: s.final, Op: "rename", Err: err}
	}
	s.state = committed
	return nil
}

// restore puts back the old version of the destination, or removes
// the new one if there was no old version.
func (s *Staged) restore() {
	if s.backup != "" {
		os.Rename(s.backup, s.final)
		s.backup = ""
	} else if s.state == committed {
		os.Remove(s.final)
	}
}

// Abort throws the temporary file away. It does nothing once the
// file has been committed, so it can always be deferred.
func (s *Staged) Abort() {
	if s.state != pending {
		return
	}
	s.state = finished
	s.fp.Close()
	os.Remove(s.fp.Name())
}

// StageSet is a group of outputs that should appear together or not
// at all.
type StageSet []*Staged

// Add stages fname and remembers it.
func (set *StageSet) Add(fname string) (*Staged, error) {
	s, err := Stage(fname)
	if err != nil {
		return nil, err
	}
	*set = append(*set, s)
	return s, nil
}

// Commit gives every member its real name. All destinations are
// checked before anything is renamed. If a rename still fails, the
// members already renamed are rolled back and the rest are thrown
// away. After success the old versions are kept until Release or
// Rollback is called.
func (set StageSet) Commit() error {
	for _, s := range set {
		if err := s.check(); err != nil {
			set.Abort()
			return err
		}
	}
	for i, s := range set {
		if err := s.commit(); err != nil {
			set[:i].Rollback()
			set[i:].Abort()
			return err
		}
	}
	return nil
}

// Rollback undoes a Commit, last member first, so the destinations
// look as they did before.
func (set StageSet) Rollback() {
	for i := len(set) - 1; i >= 0; i-- {
		if s := set[i]; s.state == committed {
			s.restore()
			s.state = finished
		}
	}
}

// Release removes the old versions kept by Commit.
func (set StageSet) Release() {
	for _, s := range set {
		if s.state != committed {
			continue
		}
		if s.backup != "" {
			os.Remove(s.backup)
			s.backup = ""
		}
		s.state = finished
	}
}

// Abort throws away every member not yet committed.
func (set StageSet) Abort() {
	for _, s := range set {
		s.Abort()
	}
}
