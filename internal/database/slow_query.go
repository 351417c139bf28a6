package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type queryStartKey struct{}

// slowQueryTracer warns about queries that take longer than threshold.
type slowQueryTracer struct {
	threshold time.Duration
	logger    *zerolog.Logger
	now       func() time.Time
}

func newSlowQueryTracer(threshold time.Duration, logger *zerolog.Logger) *slowQueryTracer {
	return &slowQueryTracer{threshold: threshold, logger: logger, now: time.Now}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, t.now())
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok {
		return
	}

	elapsed := t.now().Sub(start)
	if elapsed < t.threshold {
		return
	}

	t.logger.Warn().
		Dur("duration", elapsed).
		Dur("threshold", t.threshold).
		Str("command", data.CommandTag.String()).
		Err(data.Err).
		Msg("slow query")
}
