package hostfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// EnsureDir creates the final element of path if it does not exist yet.
// Parent directories are not created.
func EnsureDir(path string, perm os.FileMode) error {
	err := os.Mkdir(path, perm)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return nil
	}
	return err
}

// AppendFile appends data to path, creating it if absent. The data is handed
// to the kernel in one write on an O_APPEND descriptor so that concurrent
// writers do not interleave within a record.
func AppendFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = fmt.Errorf("short write to %s: %d of %d bytes", path, n, len(data))
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
