package sqerr

import "fmt"

// SQError type
type SQError struct {
	msg     string // description of error
	errType string
}

// New - Create a new Error
func New(text string) error {
	return &SQError{text, "Error"}
}

// Newf - Create a new Error with formatting
func Newf(format string, args ...interface{}) error {
	return &SQError{fmt.Sprintf(format, args...), "Error"}
}

// NewCapability - Create a new Capability Error for a method missing from
// a connection surface
func NewCapability(text string) error {
	return &SQError{text, "Capability Error"}
}

// NewCapabilityf - Create a new Capability Error with formatting
func NewCapabilityf(format string, args ...interface{}) error {
	return &SQError{fmt.Sprintf(format, args...), "Capability Error"}
}

// NewWorkload - Create a new Workload Error for a failure while running
// the transactional workload
func NewWorkload(text string) error {
	return &SQError{text, "Workload Error"}
}

// NewWorkloadf - Create a new Workload Error with formatting
func NewWorkloadf(format string, args ...interface{}) error {
	return &SQError{fmt.Sprintf(format, args...), "Workload Error"}
}

// NewConfig - Create a new Config Error for a profile flag or threshold
// that does not hold
func NewConfig(text string) error {
	return &SQError{text, "Config Error"}
}

// NewConfigf - Create a new Config Error with formatting
func NewConfigf(format string, args ...interface{}) error {
	return &SQError{fmt.Sprintf(format, args...), "Config Error"}
}

// NewInternal - Create a new internal error
func NewInternal(text string) error {
	return &SQError{text, "Internal Error"}
}

// NewInternalf - Create a new internal error with formatting
func NewInternalf(format string, args ...interface{}) error {
	return &SQError{fmt.Sprintf(format, args...), "Internal Error"}
}

func (e *SQError) Error() string { return e.errType + ": " + e.msg }
