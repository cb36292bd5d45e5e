package location

// ErrorKind classifies location failures. None of them are fatal: the
// simulator always has a usable value to fall back on.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrUnsupported
	ErrPermissionDenied
	ErrTimeout
	ErrGeocodeFailed
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupported:
		return "unsupported"
	case ErrPermissionDenied:
		return "permission denied"
	case ErrTimeout:
		return "timeout"
	case ErrGeocodeFailed:
		return "geocode failed"
	default:
		return "none"
	}
}
