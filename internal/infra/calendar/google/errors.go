package google

import (
	"context"
	"errors"
	"net"
	"net/http"

	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/shared"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// classify marks err as transient or permanent. Errors that are neither stay unmarked.
func classify(err error, msg string) error {
	if err == nil {
		return nil
	}
	wrapped := errs.Wrap(err, msg)

	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if re.ErrorCode == "invalid_grant" || re.ErrorCode == "unauthorized_client" {
			return errs.Mark(wrapped, shared.ErrProviderPermanent)
		}
		if re.Response != nil && retryableStatus(re.Response.StatusCode) {
			return errs.Mark(wrapped, shared.ErrProviderTransient)
		}
		return errs.Mark(wrapped, shared.ErrProviderPermanent)
	}

	var ge *googleapi.Error
	if errors.As(err, &ge) {
		switch {
		case ge.Code == http.StatusUnauthorized:
			return errs.Mark(wrapped, shared.ErrProviderPermanent)
		case ge.Code == http.StatusForbidden && rateLimited(ge):
			return errs.Mark(wrapped, shared.ErrProviderTransient)
		case ge.Code == http.StatusForbidden:
			return errs.Mark(wrapped, shared.ErrProviderPermanent)
		case retryableStatus(ge.Code):
			return errs.Mark(wrapped, shared.ErrProviderTransient)
		}
		return wrapped
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return errs.Mark(wrapped, shared.ErrProviderTransient)
	}
	return wrapped
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func rateLimited(ge *googleapi.Error) bool {
	for _, item := range ge.Errors {
		if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
			return true
		}
	}
	return false
}

func notFound(err error) bool {
	var ge *googleapi.Error
	return errors.As(err, &ge) && (ge.Code == http.StatusNotFound || ge.Code == http.StatusGone)
}
