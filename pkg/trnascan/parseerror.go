// An error that saves the line number and the start of the line
// we were trying to read.

package trnascan

import (
	"strconv"
)

const maxMsgLen = 70

// ParseError is a data line that does not have the columns we need.
type ParseError struct {
	Line    int    // line number, counting from 1
	Text    string // the line that provoked the error
	NField  int
	MinWant int
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

func (e *ParseError) Error() string {
	errmsg := "Line: " + strconv.Itoa(e.Line) + " "
	errmsg += "has " + strconv.Itoa(e.NField) + " fields, need at least " +
		strconv.Itoa(e.MinWant)
	errmsg += "\nLine starting with\n" + firstPart(e.Text)
	return errmsg
}
