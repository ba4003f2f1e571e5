package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "arena-drive/sim"

// Tick counts what the simulation loop did. Enabled recorders use the
// global meter provider; disabled ones use the noop provider.
type Tick struct {
	ticks    metric.Int64Counter
	outcomes metric.Int64Counter
	warnings metric.Int64Counter
}

// New creates the tick counters.
func New(enabled bool) (*Tick, error) {
	var provider metric.MeterProvider = noop.NewMeterProvider()
	if enabled {
		provider = otel.GetMeterProvider()
	}
	return NewWithProvider(provider)
}

// NewWithProvider creates the tick counters on a specific provider.
func NewWithProvider(provider metric.MeterProvider) (*Tick, error) {
	meter := provider.Meter(meterName)

	ticks, err := meter.Int64Counter("sim.ticks",
		metric.WithDescription("Simulation ticks processed while ready"))
	if err != nil {
		return nil, fmt.Errorf("create sim.ticks counter: %w", err)
	}
	outcomes, err := meter.Int64Counter("sim.outcomes",
		metric.WithDescription("Movement outcomes by kind"))
	if err != nil {
		return nil, fmt.Errorf("create sim.outcomes counter: %w", err)
	}
	warnings, err := meter.Int64Counter("sim.warnings",
		metric.WithDescription("User-visible warnings raised"))
	if err != nil {
		return nil, fmt.Errorf("create sim.warnings counter: %w", err)
	}

	return &Tick{ticks: ticks, outcomes: outcomes, warnings: warnings}, nil
}

// Nop returns recorders that drop everything.
func Nop() *Tick {
	t, _ := NewWithProvider(noop.NewMeterProvider())
	return t
}

// Record counts one tick with the given outcome name.
func (t *Tick) Record(ctx context.Context, outcome string) {
	t.ticks.Add(ctx, 1)
	t.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// Warning counts one raised warning.
func (t *Tick) Warning(ctx context.Context, kind string) {
	t.warnings.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
