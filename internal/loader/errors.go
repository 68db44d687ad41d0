package loader

import (
	"errors"
	"fmt"
)

var (
	ErrUnreadable        = errors.New("source unreadable")
	ErrEncodingExhausted = errors.New("no encoding could decode the source")
	ErrMalformedSource   = errors.New("source is not valid delimited text")
	ErrMissingColumn     = errors.New("required column missing")
)

type ErrorKind string

const (
	KindUnreadable        ErrorKind = "unreadable"
	KindEncodingExhausted ErrorKind = "encoding-exhausted"
	KindMalformedSource   ErrorKind = "malformed-source"
	KindMissingColumn     ErrorKind = "missing-column"
)

// LoadError aborts a load. Err wraps one of the Err* sentinels.
type LoadError struct {
	Path string
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadError(path string, err error) *LoadError {
	kind := KindMalformedSource
	switch {
	case errors.Is(err, ErrUnreadable):
		kind = KindUnreadable
	case errors.Is(err, ErrEncodingExhausted):
		kind = KindEncodingExhausted
	case errors.Is(err, ErrMissingColumn):
		kind = KindMissingColumn
	}
	return &LoadError{Path: path, Kind: kind, Err: err}
}
