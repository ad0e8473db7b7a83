package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrTitleNotFound indicates the requested title is not in the saved list
	ErrTitleNotFound = errors.New("title not found")

	// ErrNoTrailer indicates the video search returned no usable video id
	ErrNoTrailer = errors.New("no trailer found")

	// ErrMissingConfig indicates the API configuration is absent or invalid
	ErrMissingConfig = errors.New("api configuration is missing")
)

// ErrorKind is the closed set of categories every remote failure falls into.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNoConnection
	KindTimeout
	KindBadResponse
	KindParse
	KindMissingConfig
	KindURLBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoConnection:
		return "no_connection"
	case KindTimeout:
		return "timeout"
	case KindBadResponse:
		return "bad_response"
	case KindParse:
		return "parse_error"
	case KindMissingConfig:
		return "missing_config"
	case KindURLBuild:
		return "url_build_failed"
	default:
		return "unknown"
	}
}

// FetchError is the categorized failure returned by every remote repository operation.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int    // BadResponse only
	Message    string // response message, parse context, or unknown error text
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNoConnection:
		return "no internet connection"
	case KindTimeout:
		return "request timed out"
	case KindBadResponse:
		msg := e.Message
		if msg == "" {
			msg = "unknown error"
		}
		return fmt.Sprintf("http error %d: %s", e.StatusCode, msg)
	case KindParse:
		if e.Message != "" {
			return "failed to parse api response: " + e.Message
		}
		return "failed to parse api response"
	case KindMissingConfig:
		return ErrMissingConfig.Error()
	case KindURLBuild:
		if e.Message != "" {
			return "failed to build url: " + e.Message
		}
		return "failed to build url"
	default:
		if e.Message != "" {
			return e.Message
		}
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown network error"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the request could plausibly succeed.
// It is advisory; nothing retries automatically.
func (e *FetchError) Retryable() bool {
	switch e.Kind {
	case KindNoConnection, KindTimeout:
		return true
	case KindBadResponse:
		return e.StatusCode >= 500 && e.StatusCode <= 599
	default:
		return false
	}
}

// UserMessage returns text suitable for showing to the user.
func (e *FetchError) UserMessage() string {
	switch e.Kind {
	case KindBadResponse:
		switch {
		case e.StatusCode >= 400 && e.StatusCode <= 499:
			return "Invalid request. Please try again."
		case e.StatusCode >= 500 && e.StatusCode <= 599:
			return "Server error. Please try again later."
		default:
			return "Network error occurred."
		}
	case KindMissingConfig:
		return "App configuration error. Check APIConfig.json."
	case KindURLBuild:
		return "Invalid URL. Check the configured base URLs."
	case KindNoConnection:
		return "No internet connection. Please check your network."
	case KindTimeout:
		return "Request timed out. Please try again."
	case KindParse:
		return "Error processing data. Please try again."
	default:
		if e.Message != "" {
			return e.Message
		}
		return "Something went wrong. Please try again."
	}
}

// NewParseError builds a Parse failure with the given context.
func NewParseError(context string, err error) *FetchError {
	return &FetchError{Kind: KindParse, Message: context, Err: err}
}

// IsRetryable reports whether err is a FetchError that may be retried.
func IsRetryable(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Retryable()
	}
	return false
}

// KindOf returns the category of err, or KindUnknown if it is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// UserMessage returns a displayable message for any error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.UserMessage()
	}
	return err.Error()
}
