package types

import (
	"errors"
	"fmt"
)

const (
	// 传输错误码
	ErrTransportCode = 501
	ErrTimeoutCode   = 502
	ErrDialHupCode   = 505

	// 协议错误
	ErrMalformedResponseCode = 401
	ErrMissingFieldCode      = 402
	ErrRemoteCode            = 403

	// 客户端
	ErrUnknownCommandCode   = 301
	ErrNotEnoughArgsCode    = 302
	ErrEndpointNotFoundCode = 303
	ErrClientIdNotFoundCode = 304
	ErrUnReachAbleCode      = 305
	ErrInvalidArgumentCode  = 306
)

// transport error
var (
	ErrTimeOut = errors.New("i/o timeout")
	ErrDialHup = errors.New("endpoint unreachable")
)

// protocol error
var (
	ErrMalformedResponse = errors.New("malformed response")
	ErrMissingField      = errors.New("missing field in response")
)

// client
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNotEnoughArgs    = errors.New("not enough args")
	ErrEndpointNotFound = errors.New("lack of endpoint address")
	ErrClientIdNotFound = errors.New("lack of client id")
	ErrUnReachAble      = errors.New("unreachable branch")
	ErrInvalidArgument  = errors.New("invalid argument")
)

var codes = map[error]int{
	ErrTimeOut:           ErrTimeoutCode,
	ErrDialHup:           ErrDialHupCode,
	ErrMalformedResponse: ErrMalformedResponseCode,
	ErrMissingField:      ErrMissingFieldCode,
	ErrUnknownCommand:    ErrUnknownCommandCode,
	ErrNotEnoughArgs:     ErrNotEnoughArgsCode,
	ErrEndpointNotFound:  ErrEndpointNotFoundCode,
	ErrClientIdNotFound:  ErrClientIdNotFoundCode,
	ErrUnReachAble:       ErrUnReachAbleCode,
	ErrInvalidArgument:   ErrInvalidArgumentCode,
}

// Code returns the numeric code of the innermost known error in err's chain,
// or 0 when none is known.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return ErrRemoteCode
	}
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	var te *TransportError
	if errors.As(err, &te) {
		return ErrTransportCode
	}
	return 0
}

// ParseError reports a line that could not be turned into a command.
// Nothing is sent to the remote and no state changes.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrUnknownCommand) {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RemoteError carries the message of a response with success:false.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// ProtocolError is a response that claims success but breaks the envelope
// or reply contract.
type ProtocolError struct {
	Method string
	Field  string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %v: %s", e.Method, e.Err, e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// TransportError means no usable response came back from the endpoint.
type TransportError struct {
	Endpoint string
	Method   string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Endpoint, e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func Missing(method, field string) error {
	return &ProtocolError{Method: method, Field: field, Err: ErrMissingField}
}

// Kind names the error category for logging.
func Kind(err error) string {
	var (
		pe *ParseError
		re *RemoteError
		xe *ProtocolError
		te *TransportError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &re):
		return "remote"
	case errors.As(err, &xe):
		return "protocol"
	case errors.As(err, &te):
		return "transport"
	}
	return "internal"
}
