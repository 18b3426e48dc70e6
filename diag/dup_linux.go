//go:build linux

package diag

import "golang.org/x/sys/unix"

// linux/arm64 has no dup2 syscall
func dup2(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
