// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/ghuser/stockroom/pkg/httpx"
	"github.com/ghuser/stockroom/pkg/logger"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	purchasedomain "github.com/ghuser/stockroom/services/purchase/domain"
)

// Options controls how server errors are reported.
type Options struct {
	// Production replaces 5xx messages with the status text.
	Production bool
	// Logger receives every 5xx error with its request context. May be nil.
	Logger logger.Logger
}

var opts atomic.Pointer[Options]

// Configure installs opts for all subsequent WriteError calls. Call it once
// at startup.
func Configure(o Options) {
	opts.Store(&o)
}

func current() Options {
	if o := opts.Load(); o != nil {
		return *o
	}
	return Options{}
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	o := current()
	status := mapErrorToStatus(err)

	if status >= http.StatusInternalServerError && o.Logger != nil {
		o.Logger.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}

	msg := httpx.SafeError(err, status, o.Production)
	if details := errorDetails(err); details != nil {
		httpx.JSONErrorDetails(w, status, msg, details)
		return
	}
	httpx.JSONError(w, status, msg)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, purchasedomain.ErrInvalidRequest),
		errors.Is(err, purchasedomain.ErrUnknownItem),
		errors.Is(err, purchasedomain.ErrInsufficientStock),
		errors.Is(err, itemdomain.ErrInvalidItem):
		return http.StatusBadRequest // 400
	case errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, purchasedomain.ErrPurchaseNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrItemInUse):
		return http.StatusConflict // 409
	case errors.Is(err, purchasedomain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}

// errorDetails exposes the structured fields of typed domain errors so
// clients need not parse messages.
func errorDetails(err error) map[string]any {
	var insufficient *purchasedomain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return map[string]any{
			"item_id":   insufficient.ItemID,
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		}
	}
	var unknown *purchasedomain.UnknownItemError
	if errors.As(err, &unknown) {
		return map[string]any{"item_id": unknown.ItemID}
	}
	return nil
}
