// ABOUTME: Error taxonomy for the document store
// ABOUTME: Maps domain error codes onto gRPC status codes with errdetails

package errors

import (
	"context"
	stderrors "errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the errdetails domain attached to every status produced here.
const Domain = "github.com/nainya/docstore"

// Code is a machine-readable error code.
type Code string

const (
	// CodeInvalidArgument marks a missing or malformed request field.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound marks an unknown document, version or tag.
	CodeNotFound Code = "NOT_FOUND"
	// CodeConflict marks a lost version-assignment race.
	CodeConflict Code = "CONFLICT"
	// CodeInternal marks a backing-store failure or broken invariant.
	CodeInternal Code = "INTERNAL"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeConflict:
		return codes.Aborted
	default:
		return codes.Internal
	}
}

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WithMetadata returns a copy of e carrying the given key/value pairs.
func (e *Error) WithMetadata(kv ...string) *Error {
	out := *e
	out.Metadata = make(map[string]string, len(e.Metadata)+len(kv)/2)
	for k, v := range e.Metadata {
		out.Metadata[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out.Metadata[kv[i]] = kv[i+1]
	}
	return &out
}

// InvalidArgument is shorthand for New(CodeInvalidArgument, ...).
func InvalidArgument(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound is shorthand for New(CodeNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// CodeOf extracts the domain code from err. Errors outside the taxonomy are internal.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var de *Error
	if stderrors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given domain code.
func IsCode(err error, code Code) bool {
	var de *Error
	return stderrors.As(err, &de) && de.Code == code
}

// ToGRPCStatus converts the error to a gRPC status with an ErrorInfo detail.
func (e *Error) ToGRPCStatus() error {
	grpcCode := e.Code.GRPCCode()
	st := status.New(grpcCode, e.Error())

	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   string(e.Code),
		Domain:   Domain,
		Metadata: e.Metadata,
	})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// ToStatus converts any error returned by the engines into a gRPC status error.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	var de *Error
	if stderrors.As(err, &de) {
		return de.ToGRPCStatus()
	}
	return status.Error(codes.Internal, err.Error())
}
