package errors

import "errors"

var (
	ErrInvalid               = errors.New("invalid")
	ErrInvalidVideoURL       = errors.New("invalid video url")
	ErrTranscriptUnavailable = errors.New("transcript unavailable")
	ErrExtractFailed         = errors.New("extract failed")
	ErrUnsupportedFile       = errors.New("unsupported file")
	ErrGenerateFailed        = errors.New("generate failed")
)
