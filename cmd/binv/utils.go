package main

import (
	"os"

	"github.com/CodisLabs/codis/pkg/utils/errors"
)

// OpenError is returned when the input or output file cannot be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return "can't open file '" + e.Path + "': " + errors.Cause(e.Err).Error()
}

func openReadFile(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Trace(&OpenError{name, err})
	}
	return f, nil
}

func openWriteFile(name string) (*os.File, error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return nil, errors.Trace(&OpenError{name, err})
	}
	return f, nil
}

func closeFile(file *os.File) error {
	if err := file.Close(); err != nil {
		return errors.Trace(err)
	}
	return nil
}
