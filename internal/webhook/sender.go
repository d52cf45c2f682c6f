package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	userAgent       = "txnotify/1.0"
	maxResponseBody = 1024
)

// post performs one delivery attempt. Anything but a 200 is an error.
func (s *service) post(ctx context.Context, event Event, callbackURL string) error {
	deliveryID := uuid.Must(uuid.NewV7()).String()

	ctx, span := s.telemetry.startDelivery(ctx, deliveryID, event, callbackURL)
	defer span.End()

	body, err := json.Marshal(event)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("encode event: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, callbackURL, body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(headerDeliveryID, deliveryID)
	req.Header.Set(headerEvent, string(event.Kind))

	if s.cfg.secret != "" {
		ts := time.Now().Unix()
		req.Header.Set(headerTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(headerSignature, Sign(body, s.cfg.secret, ts))
	}

	start := time.Now()
	res, err := s.client.Do(req)
	s.telemetry.observe(ctx, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer res.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxResponseBody))

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))
	if res.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
