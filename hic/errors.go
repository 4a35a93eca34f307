package hic

import "errors"

var (
	// ErrUnreadableFile is returned when a URI cannot be opened or is not a
	// .hic container.
	ErrUnreadableFile = errors.New("hic: unreadable file")

	// ErrUnsupportedVersion is returned for container versions this reader
	// does not decode.
	ErrUnsupportedVersion = errors.New("hic: unsupported version")

	// ErrResolutionUnavailable is returned when a bin size is not one of the
	// file's base-pair resolutions.
	ErrResolutionUnavailable = errors.New("hic: resolution unavailable")

	// ErrNormalizationUnsupported is returned when blocks are requested with
	// a normalization other than NONE.
	ErrNormalizationUnsupported = errors.New("hic: normalization unsupported")
)
