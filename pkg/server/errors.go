package server

import (
	"errors"
	"fmt"

	rerrors "github.com/vango-dev/rerender/internal/errors"
)

// Sentinel errors for session and server failures.
var (
	// ErrSessionClosed is returned when an operation is attempted on a closed session.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrHandlerNotFound is returned when no handler is registered for an HID.
	ErrHandlerNotFound = errors.New("server: handler not found")

	// ErrEventQueueFull is returned when the event queue is full and an event is dropped.
	ErrEventQueueFull = errors.New("server: event queue full")

	// ErrInvalidMessage is returned for frames that are not JSON messages.
	ErrInvalidMessage = errors.New("server: invalid message")

	// ErrUnknownMessage is returned for messages with an unknown "t".
	ErrUnknownMessage = errors.New("server: unknown message type")
)

// SessionError wraps an error with session context for debugging.
type SessionError struct {
	SessionID string
	Op        string // Operation that failed
	Err       error  // Underlying error
}

// Error returns the error message with session context.
func (e *SessionError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("server: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("server: session %s: %s: %v", e.SessionID, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError.
func NewSessionError(sessionID, op string, err error) *SessionError {
	return &SessionError{
		SessionID: sessionID,
		Op:        op,
		Err:       err,
	}
}

// HandlerError wraps a panic that occurred in a click handler.
type HandlerError struct {
	SessionID string
	HID       string
	Panic     any
	Stack     []byte
}

// Error returns the error message.
func (e *HandlerError) Error() string {
	return fmt.Sprintf("server: handler panic in session %s, HID %s: %v", e.SessionID, e.HID, e.Panic)
}

// errorCode maps an event failure to the code reported to the client.
func errorCode(err error) string {
	var he *HandlerError
	switch {
	case errors.As(err, &he):
		return "R005"
	case errors.Is(err, ErrHandlerNotFound):
		return "R002"
	case errors.Is(err, ErrSessionClosed):
		return "R003"
	case errors.Is(err, ErrEventQueueFull):
		return "R004"
	case errors.Is(err, ErrInvalidMessage):
		return "R020"
	case errors.Is(err, ErrUnknownMessage):
		return "R021"
	}
	return ""
}

// errorMessage builds the client-facing error for err. Internal details
// stay in the log.
func errorMessage(err error) Message {
	code := errorCode(err)
	if code == "" {
		return Message{T: MsgError, Message: "Internal error"}
	}
	return Message{T: MsgError, Code: code, Message: rerrors.New(code).Message}
}
