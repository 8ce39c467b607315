package pval

import "errors"

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

var (
	ErrUnserializable    = errors.New("value cannot be serialized")
	ErrMalformedEncoding = errors.New("malformed encoding")
)
