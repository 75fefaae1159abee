package sessionid

import "errors"

var (
	// ErrNilBytes is returned when a session id is built from a nil byte
	// slice.
	ErrNilBytes = errors.New("session id bytes must not be nil")

	// ErrInvalidHex is returned when a hex encoded session id cannot be
	// decoded.
	ErrInvalidHex = errors.New("invalid session id hex")

	// ErrInvalidLength is returned by Validate for session ids longer than
	// MaxSize.
	ErrInvalidLength = errors.New("invalid session id length")

	// ErrInvalidConfig is returned by NewGenerator for unusable configs.
	ErrInvalidConfig = errors.New("invalid session id generator config")
)
