package errcode

const (
	ErrUnknown = 10000000 + iota
	ErrInvalid
	ErrTooMany
	ErrInternal
	ErrInvalidFile
	ErrExtractFailed
	ErrInvalidVideoURL
	ErrTranscriptUnavailable
	ErrAIUnavailable
	ErrAIGenerateFailed
)
