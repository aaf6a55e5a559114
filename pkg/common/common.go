// 29 Apr 2020
// 12 Oct 2026 moved out of the sequence package, gained ResourceError

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// ResourceError says a file could not be opened, read or written.
// It always carries the offending path.
type ResourceError struct {
	Path string
	Op   string // "open", "read", "write", ...
	Err  error
}

func (e *ResourceError) Error() string {
	path := e.Path
	switch path {
	case "":
		path = "input stream"
	case "-":
		path = "standard input/output"
	}
	return fmt.Sprintf("%s %s: %v", e.Op, path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
