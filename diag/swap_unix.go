//go:build unix

package diag

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// savedStream holds a duplicate of the stream's original descriptor.
type savedStream struct {
	fd     int
	writer io.Writer
	file   *os.File
}

func (s savedStream) close() {
	// file owns fd
	s.file.Close()
}

// swap points the stream's descriptor at w and returns the original.
func (s *Stream) swap(w *os.File) (savedStream, error) {
	target := int(s.target.Fd())

	fd, err := unix.Dup(target)
	if err != nil {
		return savedStream{}, err
	}
	unix.CloseOnExec(fd)

	if err := dup2(int(w.Fd()), target); err != nil {
		unix.Close(fd)
		return savedStream{}, err
	}

	file := os.NewFile(uintptr(fd), s.target.Name())
	return savedStream{fd: fd, writer: file, file: file}, nil
}

// unswap restores the stream's original descriptor.
func (s *Stream) unswap(saved savedStream) error {
	return dup2(saved.fd, int(s.target.Fd()))
}
