// Package events records an audit trail of webhook deliveries in MongoDB.
package events

import (
	"context"
	"sync"
	"time"

	"webhookrepo/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	fastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

// Emitter buffers audit entries and writes them in batches from one worker.
// A nil *Emitter drops everything, so callers never need to check.
type Emitter struct {
	buf    chan models.Delivery
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	wg        sync.WaitGroup
	onceClose sync.Once

	InsertOne  func(context.Context, models.Delivery) error
	InsertMany func(context.Context, []models.Delivery) error
}

func NewEmitter(coll *mongo.Collection, deployment string, logger *zap.Logger) *Emitter {
	return NewEmitterWithConfig(coll, selectConfig(deployment), logger)
}

func NewEmitterWithConfig(coll *mongo.Collection, cfg Config, logger *zap.Logger) *Emitter {
	insertOne := func(ctx context.Context, d models.Delivery) error {
		_, err := coll.InsertOne(ctx, d)
		return err
	}

	insertMany := func(ctx context.Context, ds []models.Delivery) error {
		docs := make([]interface{}, len(ds))
		for i, d := range ds {
			docs[i] = d
		}

		_, err := coll.InsertMany(ctx, docs)
		return err
	}

	return newEmitter(cfg, logger, insertOne, insertMany)
}

// NewEmitterWithInserters builds an Emitter over arbitrary write functions.
func NewEmitterWithInserters(
	cfg Config,
	logger *zap.Logger,
	insertOne func(context.Context, models.Delivery) error,
	insertMany func(context.Context, []models.Delivery) error,
) *Emitter {
	return newEmitter(cfg, logger, insertOne, insertMany)
}

func newEmitter(
	cfg Config,
	logger *zap.Logger,
	insertOne func(context.Context, models.Delivery) error,
	insertMany func(context.Context, []models.Delivery) error,
) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Emitter{
		buf:        make(chan models.Delivery, cfg.Buffer),
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		InsertOne:  insertOne,
		InsertMany: insertMany,
	}

	e.wg.Add(1)
	go e.worker()

	return e
}

func selectConfig(deployment string) Config {
	switch deployment {
	case "test":
		return fastConfig
	default:
		return defaultConfig
	}
}

// Close flushes pending entries and stops the worker. Emit must not be
// called after Close.
func (e *Emitter) Close() {
	if e == nil {
		return
	}

	e.onceClose.Do(func() {
		close(e.buf)
		e.wg.Wait()
	})
}

func (e *Emitter) worker() {
	defer e.wg.Done()

	batch := make([]models.Delivery, 0, e.cfg.BatchSize)
	timer := time.NewTimer(e.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(e.cfg.FlushEvery)
			return
		}

		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)

		if err := e.InsertMany(ctx, batch); err != nil {
			e.logger.Warn("failed to write delivery audit batch",
				zap.Int("size", len(batch)),
				zap.Error(err),
			)
		}

		cancel()

		batch = make([]models.Delivery, 0, e.cfg.BatchSize)
		timer.Reset(e.cfg.FlushEvery)
	}

	for {
		select {
		case d, ok := <-e.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, d)

			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
		}
	}
}
