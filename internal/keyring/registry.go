package keyring

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/txnotify/internal/pkg/logger"
	"github.com/gabapcia/txnotify/internal/pkg/transport/http"
	"github.com/gabapcia/txnotify/internal/pkg/validator"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds the optional settings of a Registry.
type config struct {
	client *retryablehttp.Client
}

// Option configures a Registry.
type Option func(*config)

// WithHTTPClient sets the client used by FetchFromService. The client should
// not retry on its own; failures are reported to the caller.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.client = c
	}
}

// WithRequestTimeout bounds each FetchFromService request. It is ignored
// when WithHTTPClient is also given.
func WithRequestTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if cfg.client == nil {
			cfg.client = newHTTPClient(d)
		}
	}
}

func newHTTPClient(timeout time.Duration) *retryablehttp.Client {
	return http.NewClient(
		http.WithTimeout(timeout),
		http.WithRetryMax(0),
		http.WithPassthroughErrors(),
	)
}

// Registry owns one Limiter per service name. Limiters share the Registry's
// counter store and HTTP client.
type Registry struct {
	store   Counter
	client  *retryablehttp.Client
	metrics *metrics

	mu       sync.RWMutex
	limiters map[string]*Limiter
}

// Compile-time assertion that *Registry implements Service.
var _ Service = (*Registry)(nil)

// NewRegistry creates an empty Registry whose counters live in store.
func NewRegistry(store Counter, opts ...Option) *Registry {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.client == nil {
		cfg.client = newHTTPClient(10 * time.Second)
	}

	return &Registry{
		store:    store,
		client:   cfg.client,
		metrics:  newMetrics(),
		limiters: make(map[string]*Limiter),
	}
}

// Register configures the pool of service. Registering a service that
// already exists replaces its pool in place and returns the same Limiter;
// existing usage counters are kept. Zero quota, window and key parameter
// take the package defaults.
func (r *Registry) Register(service string, pool Pool) (*Limiter, error) {
	if err := validator.Var(service, "required"); err != nil {
		return nil, err
	}

	pool = pool.withDefaults()
	if err := pool.validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.limiters[service]; ok {
		l.setPool(pool)
		logger.Debug(context.Background(), "key pool updated",
			"keyring.service", service,
			"keyring.keys", len(pool.Keys),
		)
		return l, nil
	}

	l := &Limiter{
		service: service,
		store:   r.store,
		client:  r.client,
		metrics: r.metrics,
		pool:    pool,
	}
	r.limiters[service] = l

	return l, nil
}

// Limiter returns the limiter of service.
func (r *Registry) Limiter(service string) (*Limiter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.limiters[service]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPoolNotConfigured, service)
	}

	return l, nil
}

// Services lists the registered service names in ascending order.
func (r *Registry) Services() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.limiters))
}

// GetAvailableKey returns a key of service's pool that still has budget in
// the current window. It fails with ErrPoolNotConfigured for an unknown
// service and ErrKeysExhausted when every key is at quota.
func (r *Registry) GetAvailableKey(ctx context.Context, service string) (string, error) {
	l, err := r.Limiter(service)
	if err != nil {
		return "", err
	}

	return l.GetAvailableKey(ctx)
}

// IncrementKeyUsage counts one call against apiKey in service's pool and
// returns the usage within the current window. A key outside the pool fails
// with ErrUnknownKey.
func (r *Registry) IncrementKeyUsage(ctx context.Context, service, apiKey string) (int64, error) {
	l, err := r.Limiter(service)
	if err != nil {
		return 0, err
	}

	return l.IncrementKeyUsage(ctx, apiKey)
}

// FetchFromService performs a GET against baseURL with an available key of
// service attached as the pool's key parameter.
//
// Parameters:
//   - ctx: bounds the key lookup and the HTTP request.
//   - service: the pool to draw the key from.
//   - baseURL: the endpoint to call.
//   - params: extra query parameters; the caller's map is not modified.
//
// Returns:
//   - The response body on a 2xx status.
//   - ErrPoolNotConfigured or ErrKeysExhausted before any request is made.
//   - ErrUnexpectedStatus for a non-2xx reply, or the transport error.
func (r *Registry) FetchFromService(ctx context.Context, service, baseURL string, params url.Values) ([]byte, error) {
	l, err := r.Limiter(service)
	if err != nil {
		return nil, err
	}

	return l.FetchFromService(ctx, baseURL, params)
}
