package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"text/template"
	"time"
)

type Code string

func (c Code) New(msg string) *Error {
	return &Error{
		Code:      c,
		Message:   msg,
		Details:   make(map[string]any),
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

// WithPrefix returns a generator of sequential codes scoped to one prefix,
// e.g. EVENTS_0001, EVENTS_0002.
func WithPrefix(prefix string) func() Code {
	counter := int64(0)
	return func() Code {
		counter++
		return Code(fmt.Sprintf("%s_%04d", prefix, counter))
	}
}

type Error struct {
	Code      Code           `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
	Stack     string         `json:"-"`
	Timestamp time.Time      `json:"timestamp"`
}

// Error renders the message as a text/template over Details, so messages can
// reference detail keys like {{.module}}. Falls back to the raw message when
// the template does not parse or execute.
func (e *Error) Error() string {
	t, err := template.New("error").Parse(e.Message)
	if err != nil {
		return e.plainMessage()
	}

	var out bytes.Buffer
	if err = t.Execute(&out, e.Details); err != nil {
		return e.plainMessage()
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, out.String(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, out.String())
}

func (e *Error) plainMessage() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithCause returns a copy carrying the cause. Package-level error values
// stay immutable; derived errors still match the original via Is.
func (e *Error) WithCause(err error) *Error {
	clone := e.clone()
	clone.Cause = err
	return clone
}

func (e *Error) WithDetail(key string, value any) *Error {
	clone := e.clone()
	clone.Details[key] = value
	return clone
}

func (e *Error) clone() *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	return &Error{
		Code:      e.Code,
		Message:   e.Message,
		Details:   details,
		Cause:     e.Cause,
		Stack:     getStack(),
		Timestamp: time.Now(),
	}
}

// Is matches by code, so errors.Is works across WithDetail/WithCause copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func getStack() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
