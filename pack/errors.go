package pack

import "errors"

var (
	// ErrBadMagic is returned when a stream does not start with the column magic.
	ErrBadMagic = errors.New("pack: bad magic")

	// ErrWidthMismatch is returned when a stream was written for a different word width.
	ErrWidthMismatch = errors.New("pack: word width mismatch")

	// ErrCorrupt is returned when block sizes or counts are inconsistent.
	ErrCorrupt = errors.New("pack: corrupt stream")

	// ErrUnknownCompression is returned for an unsupported compression type.
	ErrUnknownCompression = errors.New("pack: unknown compression type")
)
