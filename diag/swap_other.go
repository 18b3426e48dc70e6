//go:build !unix

package diag

import (
	"io"
	"os"
)

// Without descriptor duplication only Go code that writes through os.Stdout
// is captured: the os.Stdout variable is swapped for the pipe.
type savedStream struct {
	writer   io.Writer
	previous *os.File
}

func (s savedStream) close() {}

func (s *Stream) swap(w *os.File) (savedStream, error) {
	saved := savedStream{writer: s.target}
	if os.Stdout == s.target {
		saved.previous = os.Stdout
		os.Stdout = w
	}
	return saved, nil
}

func (s *Stream) unswap(saved savedStream) error {
	if saved.previous != nil {
		os.Stdout = saved.previous
	}
	return nil
}
