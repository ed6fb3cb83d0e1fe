package domain

import "errors"

// Sentinel errors returned (wrapped) by the workflow. Every one of them aborts
// the whole run.
var (
	// ErrSourceUnreadable reports a missing, unreadable or undecodable input.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrSourceUnparseable reports an input that is not valid JavaScript.
	ErrSourceUnparseable = errors.New("source unparseable")
	// ErrSinkUnwritable reports a failure to encode or write an output file.
	ErrSinkUnwritable = errors.New("sink unwritable")
	// ErrInvalidPattern reports a detection pattern that does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrUnknownEncoding reports an unsupported text encoding label.
	ErrUnknownEncoding = errors.New("unknown encoding")
)
