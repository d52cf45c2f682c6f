package webhook

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/txnotify/internal/pkg/logger"
	"github.com/gabapcia/txnotify/internal/pkg/transport/http"
	"github.com/gabapcia/txnotify/internal/pkg/types"
	"github.com/gabapcia/txnotify/internal/pkg/validator"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds the delivery settings.
type config struct {
	defaultURL     string
	maxRetries     int
	retryDelay     time.Duration
	maxDuplicates  int
	requestTimeout time.Duration
	secret         string
	client         *retryablehttp.Client
}

// Option configures the service.
type Option func(*config)

// WithDefaultURL sets the destination used when a wallet has no callback.
func WithDefaultURL(u string) Option {
	return func(c *config) {
		c.defaultURL = u
	}
}

// WithMaxRetries bounds the attempt counter of a failing delivery.
// Default: 10.
func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets the pause of the retry worker after each task.
// Default: 5s.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.retryDelay = d
	}
}

// WithMaxDuplicates sets how many attempts, successful or not, are made for
// the same confirmation count before further ones are suppressed. Default: 3.
func WithMaxDuplicates(n int) Option {
	return func(c *config) {
		c.maxDuplicates = n
	}
}

// WithRequestTimeout bounds each HTTP request. Default: 10s.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) {
		c.requestTimeout = d
	}
}

// WithSecret enables HMAC signing of the request bodies.
func WithSecret(secret string) Option {
	return func(c *config) {
		c.secret = secret
	}
}

// WithHTTPClient replaces the HTTP client. The client must not retry on its
// own and must hand back non-2xx responses; WithRequestTimeout is ignored.
func WithHTTPClient(client *retryablehttp.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

type service struct {
	cfg         config
	store       RecordStore
	subscribers SubscriberLookup
	client      *retryablehttp.Client
	queue       *retryQueue
	telemetry   *telemetry
}

// Compile-time assertion that service implements Service.
var _ Service = (*service)(nil)

// New creates the delivery service. subscribers may be nil, in which case
// every event goes to the default URL.
func New(store RecordStore, subscribers SubscriberLookup, opts ...Option) *service {
	cfg := config{
		maxRetries:     10,
		retryDelay:     5 * time.Second,
		maxDuplicates:  3,
		requestTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := cfg.client
	if client == nil {
		client = http.NewClient(
			http.WithTimeout(cfg.requestTimeout),
			http.WithRetryMax(0),
			http.WithPassthroughErrors(),
		)
	}

	s := &service{
		cfg:         cfg,
		store:       store,
		subscribers: subscribers,
		client:      client,
		telemetry:   newTelemetry(),
	}
	s.queue = newRetryQueue(cfg.retryDelay, s.retry)

	return s
}

func (s *service) Send(ctx context.Context, event Event) error {
	if err := validator.Validate(event); err != nil {
		return err
	}

	// Deliveries run to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	urls := s.destinations(ctx, event.Wallet)
	if len(urls) == 0 {
		logger.Warn(ctx, "no callback url configured, dropping event",
			"webhook.wallet", event.Wallet,
			"webhook.tx_id", event.Data.TxID,
		)
		return nil
	}

	var wg sync.WaitGroup
	for _, u := range urls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.deliver(ctx, event, u)
		}()
	}
	wg.Wait()

	return nil
}

func (s *service) WasSent(ctx context.Context, event Event, callbackURL string) bool {
	if callbackURL == "" {
		return false
	}

	r, found := s.loadRecord(ctx, recordKey(event.Wallet, event.Data.TxID, callbackURL))
	return found && r.Confirmed && s.atLimit(r, event.Data.Confirmations)
}

func (s *service) Wait(ctx context.Context) error {
	return s.queue.wait(ctx)
}

// destinations returns the callback URLs of wallet, falling back to the
// default URL when there are none or the lookup fails.
func (s *service) destinations(ctx context.Context, wallet string) []string {
	var urls []string
	if s.subscribers != nil {
		found, err := s.subscribers.CallbackURLs(ctx, wallet)
		if err != nil {
			logger.Warn(ctx, "callback lookup failed, using default url",
				"webhook.wallet", wallet,
				"error", err,
			)
		}
		urls = found
	}

	if len(urls) == 0 && s.cfg.defaultURL != "" {
		return []string{s.cfg.defaultURL}
	}

	return types.Sorted(types.NewSet(urls...))
}

// deliver runs one attempt for one destination and updates its record.
func (s *service) deliver(ctx context.Context, event Event, callbackURL string) {
	key := recordKey(event.Wallet, event.Data.TxID, callbackURL)
	confirmations := event.Data.Confirmations

	prior, found := s.loadRecord(ctx, key)
	if found && s.atLimit(prior, confirmations) {
		s.telemetry.record(ctx, outcomeSuppressed)
		logger.Debug(ctx, "webhook duplicate limit reached, skipping",
			"webhook.url", callbackURL,
			"webhook.tx_id", event.Data.TxID,
			"webhook.confirmations", confirmations,
			"webhook.attempts", prior.Attempts,
		)
		return
	}

	event.Kind = kindFor(event.Data, found)

	err := s.post(ctx, event, callbackURL)
	if err == nil {
		attempts := 1
		if found && prior.Confirmed && prior.Confirmations == confirmations {
			attempts = prior.Attempts + 1
		}

		s.saveRecord(ctx, key, Record{
			Confirmations: confirmations,
			Attempts:      attempts,
			Confirmed:     true,
		})

		s.telemetry.record(ctx, outcomeDelivered)
		logger.Info(ctx, "webhook delivered",
			"webhook.url", callbackURL,
			"webhook.wallet", event.Wallet,
			"webhook.tx_id", event.Data.TxID,
			"webhook.event", event.Kind,
			"webhook.confirmations", confirmations,
		)
		return
	}

	attempts := prior.Attempts + 1
	if attempts > s.cfg.maxRetries {
		s.telemetry.record(ctx, outcomeExhausted)
		logger.Error(ctx, "webhook retries exhausted",
			"webhook.url", callbackURL,
			"webhook.wallet", event.Wallet,
			"webhook.tx_id", event.Data.TxID,
			"webhook.attempts", prior.Attempts,
			"error", err,
		)
		return
	}

	s.saveRecord(ctx, key, Record{
		Confirmations: confirmations,
		Attempts:      attempts,
		Confirmed:     false,
	})

	if attempts >= s.cfg.maxDuplicates {
		s.telemetry.record(ctx, outcomeExhausted)
		logger.Error(ctx, "webhook duplicate limit reached, not retrying",
			"webhook.url", callbackURL,
			"webhook.wallet", event.Wallet,
			"webhook.tx_id", event.Data.TxID,
			"webhook.attempts", attempts,
			"webhook.max_duplicates", s.cfg.maxDuplicates,
			"error", err,
		)
		return
	}

	s.queue.push(ctx, retryTask{event: event, callbackURL: callbackURL})

	s.telemetry.record(ctx, outcomeFailed)
	logger.Warn(ctx, "webhook delivery failed, retry scheduled",
		"webhook.url", callbackURL,
		"webhook.tx_id", event.Data.TxID,
		"webhook.attempt", attempts,
		"webhook.max_retries", s.cfg.maxRetries,
		"error", err,
	)
}

// retry is the retry worker's handler.
func (s *service) retry(ctx context.Context, task retryTask) {
	logger.Debug(ctx, "retrying webhook delivery",
		"webhook.url", task.callbackURL,
		"webhook.tx_id", task.event.Data.TxID,
		"webhook.pending", s.queue.len(),
	)

	s.deliver(ctx, task.event, task.callbackURL)
}
