package usage

import "fmt"

// InvalidConfigKey is returned when a config command names an unknown key.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("verbparse: unknown config key '%s'. See 'verbparse config list'.", key),
	}
}

// InvalidConfig wraps a configuration that could not be loaded or applied.
func InvalidConfig(err error) *Error {
	return &Error{
		Kind:    ErrInvalidConfig,
		Message: fmt.Sprintf("verbparse: invalid configuration: %v", err),
		Err:     err,
	}
}

// FailedConfigPath is returned when the config file location cannot be resolved.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("verbparse: cannot locate config file: %v", err),
		Err:     err,
	}
}
