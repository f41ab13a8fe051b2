package formula

import "fmt"

// IOError reports a failure to create, open, write or flush the output
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("cannot %v %v: %v", err.Op, err.Path, err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}

type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %v %v", err.Field, err.Reason)
}
