//go:build unix

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// accessWritable asks the kernel whether the current user may write to dir
func accessWritable(dir string) (bool, error) {
	err := unix.Access(dir, unix.W_OK)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, unix.EACCES) || errors.Is(err, unix.EROFS) || errors.Is(err, unix.EPERM) {
		return false, nil
	}
	return false, err
}
