package errcode

const (
	LevelWarning = "warning"
	LevelError   = "error"
)

// Level tells the client whether a failure is a user-correctable warning or
// an error.
func Level(code int) string {
	switch code {
	case ErrInvalid, ErrInvalidFile, ErrInvalidVideoURL, ErrTooMany:
		return LevelWarning
	default:
		return LevelError
	}
}
