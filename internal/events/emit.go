package events

import (
	"context"
	"time"

	"webhookrepo/internal/models"

	"go.uber.org/zap"
)

func (e *Emitter) Emit(d models.Delivery) {
	if e == nil {
		return
	}

	d.TimeStamp = e.now().UTC()

	select {
	case e.buf <- d:
	default:
		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)
		defer cancel()

		if err := e.InsertOne(ctx, d); err != nil {
			e.logger.Warn("failed to write delivery audit entry", zap.Error(err))
		}
	}
}
