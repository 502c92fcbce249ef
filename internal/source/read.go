// Package source acquires raw bank documents from the filesystem.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrFileRead matches every failure returned by ReadFile.
var ErrFileRead = errors.New("file read failed")

// ReadError reports a bank file that could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrFileRead, e.Err}
}

// ReadFile reads path off the caller's goroutine. A cancelled context
// abandons the read and returns the context error wrapped in a ReadError.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, &ReadError{Path: path, Err: errors.New("path is required")}
	}
	if err := ctx.Err(); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &ReadError{Path: path, Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return nil, &ReadError{Path: path, Err: res.err}
		}
		return res.data, nil
	}
}
