package hashtable

import (
	"errors"
	"fmt"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// KeyError carries the operation and key that failed
type KeyError struct {
	Op  string
	Key any
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %#v: %v", e.Op, e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

func notFound(op string, key any) error {
	return &KeyError{Op: op, Key: key, Err: ErrKeyNotFound}
}
