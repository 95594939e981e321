package models

// ErrorKind classifies a hard failure
type ErrorKind int

const (
	KindToolUnavailable ErrorKind = iota + 1
	KindInvalidManifest
	KindInstallFailed
	KindLaunchFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindToolUnavailable:
		return "tool unavailable"
	case KindInvalidManifest:
		return "invalid manifest"
	case KindInstallFailed:
		return "install failed"
	case KindLaunchFailed:
		return "launch failed"
	default:
		return "unknown"
	}
}

// CheckError is a hard failure that halts an ecosystem check
type CheckError struct {
	Ecosystem Ecosystem
	Kind      ErrorKind
	Message   string
	Err       error
}

func (e *CheckError) Error() string {
	msg := e.Message
	if e.Ecosystem != "" {
		msg = e.Ecosystem.Label() + " " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// NewCheckError builds a CheckError for the given ecosystem
func NewCheckError(eco Ecosystem, kind ErrorKind, message string, err error) *CheckError {
	return &CheckError{Ecosystem: eco, Kind: kind, Message: message, Err: err}
}
