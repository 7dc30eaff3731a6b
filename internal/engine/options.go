package engine

import (
	"math/rand"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minefield/internal/board"
)

// Option configures an Engine during creation.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	listener Listener
	logger   zerolog.Logger
	tracer   trace.Tracer
	layout   []board.Position // If set, bombs go exactly here instead of being sampled
}

// WithRand sets the random source used for bomb placement.
// Use a fixed seed for reproducible boards.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithListener registers the notification target.
func WithListener(l Listener) Option {
	return func(o *options) {
		if l != nil {
			o.listener = l
		}
	}
}

// WithLogger sets the logger for state transitions. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTracer overrides the tracer used for action spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithLayout places bombs at fixed positions instead of sampling them.
func WithLayout(bombs ...board.Position) Option {
	return func(o *options) { o.layout = bombs }
}
