package repository

import (
	"context"
	"errors"
	"net"
	"os"
	"syscall"

	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/httpx"
)

// classify maps any error from a remote call to a *domain.FetchError.
func classify(err error) *domain.FetchError {
	if err == nil {
		return nil
	}

	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return fe
	}

	var (
		statusErr *httpx.StatusError
		decodeErr *httpx.DecodeError
		urlErr    *httpx.URLError
		dnsErr    *net.DNSError
		opErr     *net.OpError
		netErr    net.Error
	)

	switch {
	case errors.Is(err, domain.ErrMissingConfig):
		return &domain.FetchError{Kind: domain.KindMissingConfig, Err: err}
	case errors.As(err, &urlErr):
		return &domain.FetchError{Kind: domain.KindURLBuild, Message: urlErr.Target, Err: err}
	case errors.As(err, &statusErr):
		msg := statusErr.Status
		if msg == "" {
			msg = statusErr.Body
		}
		return &domain.FetchError{Kind: domain.KindBadResponse, StatusCode: statusErr.StatusCode, Message: msg, Err: err}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, os.ErrDeadlineExceeded):
		return &domain.FetchError{Kind: domain.KindTimeout, Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &domain.FetchError{Kind: domain.KindTimeout, Err: err}
	case errors.As(err, &decodeErr):
		return &domain.FetchError{Kind: domain.KindParse, Message: decodeErr.Err.Error(), Err: err}
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.EHOSTUNREACH):
		return &domain.FetchError{Kind: domain.KindNoConnection, Err: err}
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return &domain.FetchError{Kind: domain.KindNoConnection, Err: err}
	default:
		return &domain.FetchError{Kind: domain.KindUnknown, Message: err.Error(), Err: err}
	}
}
