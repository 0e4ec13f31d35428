package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidConfigKey
	ErrInvalidConfig
	ErrFailedConfigPath
	ErrUnmatched
	ErrFault
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key or value
//	  - Failed config path
//	  - Parser fault
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Input that matched no shape
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidConfigKey: 1,
	ErrInvalidConfig:    1,
	ErrFailedConfigPath: 1,
	ErrUnmatched:        2,
	ErrFault:            1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code derived from Kind.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
