// Package ingest turns GitHub webhook deliveries into stored event records.
package ingest

import (
	"context"
	"errors"
	"strings"
	"time"

	"webhookrepo/internal/eventstore"
	"webhookrepo/internal/metrics"
	"webhookrepo/internal/models"
	"webhookrepo/internal/payload"

	"go.uber.org/zap"
)

// GitHub event names routed by the dispatcher.
const (
	PushEvent        = "push"
	PullRequestEvent = "pull_request"
)

var (
	ErrMissingEventType = errors.New("no event type found")
	ErrMalformedPayload = errors.New("invalid JSON payload")
)

// Listener is told about every record that was stored successfully.
type Listener interface {
	Publish(record models.EventRecord)
}

// Outcome describes what one delivery produced. Err carries a persistence
// failure that was logged and swallowed; it never reaches the webhook sender.
type Outcome struct {
	EventType string
	Record    *models.EventRecord
	Stored    bool
	Err       error
}

// Result names the outcome the way metrics and audit entries label it.
func (o Outcome) Result() string {
	switch {
	case o.Stored:
		return metrics.OutcomeStored
	case o.Err != nil:
		return metrics.OutcomeFailed
	default:
		return metrics.OutcomeIgnored
	}
}

// Dispatcher routes deliveries to the push, pull request and merge normalizers
// and writes the resulting record to the store.
type Dispatcher struct {
	store     eventstore.Gateway
	logger    *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
	listeners []Listener
}

type Option func(*Dispatcher)

// WithClock replaces time.Now as the per-delivery clock reading.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

func WithListener(l Listener) Option {
	return func(d *Dispatcher) { d.listeners = append(d.listeners, l) }
}

func New(store eventstore.Gateway, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch handles one delivery. Only a missing event type or a body that is
// not JSON produce an error; unknown events, ignored actions and store failures
// all succeed.
func (d *Dispatcher) Dispatch(ctx context.Context, eventType string, body []byte) (Outcome, error) {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		d.metrics.Delivery("", metrics.OutcomeRejected)
		return Outcome{}, ErrMissingEventType
	}

	out := Outcome{EventType: eventType}

	p, err := payload.Parse(body)
	if err != nil {
		d.metrics.Delivery(eventType, metrics.OutcomeRejected)
		return out, ErrMalformedPayload
	}

	// One clock reading per delivery keeps created_at, the fallback timestamp
	// and formatted_time consistent.
	now := d.now().UTC()

	record, ok := Normalize(eventType, p, now)
	if !ok {
		d.metrics.Delivery(eventType, out.Result())
		return out, nil
	}
	out.Record = &record

	start := time.Now()
	err = d.store.Insert(ctx, record)
	d.metrics.ObserveStore("insert", start)

	if err != nil {
		d.logger.Error("failed to store event",
			zap.String("event", eventType),
			zap.String("type", string(record.Type)),
			zap.Error(err),
		)
		out.Err = err
		d.metrics.Delivery(eventType, out.Result())
		return out, nil
	}

	out.Stored = true
	d.logger.Info("stored event",
		zap.String("type", string(record.Type)),
		zap.String("message", record.Message),
	)
	d.metrics.Delivery(eventType, out.Result())
	d.metrics.RecordStored(string(record.Type))

	for _, l := range d.listeners {
		l.Publish(record)
	}

	return out, nil
}

// Normalize picks the branch for eventType and builds its record. It reports
// false when the delivery does not map to any record.
func Normalize(eventType string, p payload.Payload, now time.Time) (models.EventRecord, bool) {
	switch eventType {
	case PushEvent:
		return NormalizePush(p, now), true
	case PullRequestEvent:
		if p.String("action", "") == "closed" && p.Bool("pull_request.merged") {
			return NormalizeMerge(p, now), true
		}
		return NormalizePullRequest(p, now)
	default:
		return models.EventRecord{}, false
	}
}
