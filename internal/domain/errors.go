package domain

import (
	"errors"
	"fmt"
)

var (
	ErrIO            = errors.New("i/o failure")
	ErrParse         = errors.New("invalid talk")
	ErrScheduling    = errors.New("unschedulable talks")
	ErrInvalidLayout = errors.New("invalid session layout")
)

type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// ParseError reports a talk description that could not be understood.
// LineNumber is 1-based; zero means the position is unknown.
type ParseError struct {
	Line       string
	LineNumber int
	Reason     string
	Err        error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("could not parse talk from '%s'", e.Line)
	if e.LineNumber > 0 {
		msg = fmt.Sprintf("line %d: %s", e.LineNumber, msg)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

type SchedulingError struct {
	Remaining int
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("could not schedule the remaining %d talks", e.Remaining)
}

func (e *SchedulingError) Is(target error) bool {
	return target == ErrScheduling
}
