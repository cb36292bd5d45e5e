package device

// CameraErrorKind classifies camera acquisition failures.
type CameraErrorKind int

const (
	CameraErrNone CameraErrorKind = iota
	CameraDenied
	CameraNotFound
	CameraNotSupported
	CameraOverconstrained
	CameraUnknown
)

func (k CameraErrorKind) String() string {
	switch k {
	case CameraDenied:
		return "denied"
	case CameraNotFound:
		return "not found"
	case CameraNotSupported:
		return "not supported"
	case CameraOverconstrained:
		return "overconstrained"
	case CameraUnknown:
		return "unknown"
	default:
		return "none"
	}
}

// Message returns the reader-facing explanation for the failure.
func (k CameraErrorKind) Message() string {
	switch k {
	case CameraDenied:
		return "Permiso de cámara denegado."
	case CameraNotFound:
		return "No se encontró cámara en tu dispositivo."
	case CameraNotSupported:
		return "Este entorno no soporta acceso a cámara."
	case CameraOverconstrained:
		return "La cámara no cumple con los requisitos solicitados."
	case CameraUnknown:
		return "Error desconocido al acceder a la cámara."
	default:
		return ""
	}
}

// OrientationErrorKind classifies orientation acquisition failures.
type OrientationErrorKind int

const (
	OrientationErrNone OrientationErrorKind = iota
	OrientationDenied
	OrientationUnsupported
)

func (k OrientationErrorKind) String() string {
	switch k {
	case OrientationDenied:
		return "denied"
	case OrientationUnsupported:
		return "unsupported"
	default:
		return "none"
	}
}
