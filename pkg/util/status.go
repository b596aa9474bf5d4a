package util

import (
	"errors"
	"fmt"
	"syscall"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StatusWrap prepends a string to the message of an existing error.
func StatusWrap(err error, msg string) error {
	p := status.Convert(err).Proto()
	p.Message = fmt.Sprintf("%s: %s", msg, p.Message)
	return status.ErrorProto(p)
}

// StatusWrapf prepends a formatted string to the message of an existing error.
func StatusWrapf(err error, format string, args ...interface{}) error {
	return StatusWrap(err, fmt.Sprintf(format, args...))
}

// StatusWrapWithCode prepends a string to the message of an existing
// error, while replacing the error code.
func StatusWrapWithCode(err error, code codes.Code, msg string) error {
	p := status.Convert(err).Proto()
	p.Code = int32(code)
	p.Message = fmt.Sprintf("%s: %s", msg, p.Message)
	return status.ErrorProto(p)
}

// StatusFromSyscallError converts an error returned by a system call
// to a gRPC status, picking a code that corresponds to the error
// number. Errors that are already gRPC statuses keep their code, and
// are only prefixed with the message.
func StatusFromSyscallError(err error, msg string) error {
	if _, ok := status.FromError(err); ok {
		return StatusWrap(err, msg)
	}
	code := codes.Internal
	switch {
	case errors.Is(err, syscall.ENOENT):
		code = codes.NotFound
	case errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		code = codes.PermissionDenied
	case errors.Is(err, syscall.ENAMETOOLONG), errors.Is(err, syscall.EINVAL):
		code = codes.InvalidArgument
	}
	return StatusWrapWithCode(err, code, msg)
}
