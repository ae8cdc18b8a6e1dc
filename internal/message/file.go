package message

import (
	"fmt"
	"os"
)

// ReadFile loads the commit message verbatim, trailing newline included
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

// WriteFile replaces the commit message file contents. The file is truncated
// in place; there is no temp file or backup.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// FileError reports a failed read or write of the commit message file
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s commit message file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
