package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func NewErrorMsg(internal string, errcode uint32) error {
	return status.Error(codes.Code(errcode), internal)
}

var (
	ErrApiUrlNotConfigured      = NewConfiguration("SATIM API URL is not configured.")
	ErrCredentialsNotConfigured = NewConfiguration("SATIM credentials are not configured.")
)

// InvalidArgumentError is returned when a request violates one of its field
// rules. Message holds the first failing rule only.
type InvalidArgumentError struct {
	Message string
}

func NewInvalidArgument(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func (e *InvalidArgumentError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Message)
}

// GatewayUnavailableError wraps transport failures and non-2xx upstream replies.
type GatewayUnavailableError struct {
	Message    string
	StatusCode int
	Err        error
}

func NewGatewayUnavailable(message string, statusCode int, err error) *GatewayUnavailableError {
	return &GatewayUnavailableError{Message: message, StatusCode: statusCode, Err: err}
}

func NewServerError(reason string, statusCode int) *GatewayUnavailableError {
	return NewGatewayUnavailable(fmt.Sprintf("Server error: %s (%d).", reason, statusCode), statusCode, nil)
}

func (e *GatewayUnavailableError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GatewayUnavailableError) Unwrap() error {
	return e.Err
}

func (e *GatewayUnavailableError) GRPCStatus() *status.Status {
	return status.New(codes.Unavailable, e.Error())
}

// ConfigurationError is raised the first time a missing setting is needed.
type ConfigurationError struct {
	Message string
}

func NewConfiguration(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func (e *ConfigurationError) GRPCStatus() *status.Status {
	return status.New(codes.FailedPrecondition, e.Message)
}

func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

func IsGatewayUnavailable(err error) bool {
	var target *GatewayUnavailableError
	return errors.As(err, &target)
}

func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// Code maps any error of the taxonomy to its grpc code, codes.Unknown otherwise.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var st interface{ GRPCStatus() *status.Status }
	if errors.As(err, &st) {
		return st.GRPCStatus().Code()
	}
	return codes.Unknown
}
