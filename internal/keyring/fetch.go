package keyring

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gabapcia/txnotify/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// FetchFromService issues a GET to baseURL with params and an available key
// in the pool's key parameter. Usage is recorded only for 2xx responses.
// Transport errors are returned unchanged.
func (l *Limiter) FetchFromService(ctx context.Context, baseURL string, params url.Values) ([]byte, error) {
	apiKey, err := l.GetAvailableKey(ctx)
	if err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	for name, values := range params {
		for _, v := range values {
			query.Add(name, v)
		}
	}
	query.Set(l.Pool().KeyParam, apiKey)
	endpoint.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := l.client.Do(req)
	if err != nil {
		l.metrics.record(ctx, l.service, outcomeError)
		logger.Error(ctx, "key pool request failed",
			"keyring.service", l.service,
			"error", err,
		)
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		l.metrics.record(ctx, l.service, outcomeError)
		logger.Error(ctx, "key pool request rejected",
			"keyring.service", l.service,
			"http.status_code", res.StatusCode,
		)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		l.metrics.record(ctx, l.service, outcomeError)
		return nil, err
	}

	if _, err := l.IncrementKeyUsage(ctx, apiKey); err != nil {
		// The pool was replaced while the request was in flight.
		logger.Warn(ctx, "usage not recorded for removed key",
			"keyring.service", l.service,
			"error", err,
		)
	}

	l.metrics.record(ctx, l.service, outcomeOK)
	return body, nil
}
