package sim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arena-drive/internal/animation"
	"arena-drive/internal/arena"
	"arena-drive/internal/assets"
	"arena-drive/internal/camera"
	"arena-drive/internal/common"
	"arena-drive/internal/config"
	"arena-drive/internal/input"
	"arena-drive/internal/logging"
	"arena-drive/internal/metrics"
	"arena-drive/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TickState is what the last tick did.
type TickState uint8

const (
	StateUninitialized TickState = iota // No vehicle yet; ticks are no-ops
	StateIdle
	StateMoving
	StateBlocked
	StateOverLimit
)

func (s TickState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateBlocked:
		return "blocked"
	case StateOverLimit:
		return "over_limit"
	default:
		return "unknown"
	}
}

func stateFor(o physics.Outcome) TickState {
	switch o {
	case physics.OutcomeMoved:
		return StateMoving
	case physics.OutcomeBlocked:
		return StateBlocked
	case physics.OutcomeOverLimit:
		return StateOverLimit
	default:
		return StateIdle
	}
}

// WarningFunc receives non-fatal, user-visible warnings.
type WarningFunc func(error)

// Option configures a Session.
type Option func(*Session)

// WithWarningFunc sets where warnings are surfaced to the user.
func WithWarningFunc(fn WarningFunc) Option {
	return func(s *Session) { s.onWarning = fn }
}

// WithMetrics replaces the tick recorders.
func WithMetrics(m *metrics.Tick) Option {
	return func(s *Session) { s.metrics = m }
}

// Session owns one run of the simulation core: input, vehicle, obstacles
// and camera. All methods must be called from the thread driving Update.
type Session struct {
	id  string
	log *logging.Logger

	params     physics.Params
	wheelSpeed float64

	input    *input.Aggregator
	bindings *input.Bindings
	held     map[string]input.Action // Bound keys currently down
	rig      *camera.Rig

	vehicle   *physics.Vehicle
	obstacles *arena.Registry

	pending <-chan assets.Result
	loadErr error

	state   TickState
	last    time.Duration
	started bool

	onWarning WarningFunc
	metrics   *metrics.Tick
}

// New builds a session in the uninitialized state.
func New(cfg *config.Config, log *logging.Logger, opts ...Option) (*Session, error) {
	bindings, err := input.NewBindings(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("controls: %w", err)
	}

	rig := camera.NewRig(cfg.Window.Width, cfg.Window.Height)
	rig.FOV = cfg.Camera.FOV
	rig.Near = cfg.Camera.Near
	rig.Far = cfg.Camera.Far
	rig.Smoothing = cfg.Camera.Smoothing
	if len(cfg.Camera.Offset) == 3 {
		rig.Offset = mgl64.Vec3{cfg.Camera.Offset[0], cfg.Camera.Offset[1], cfg.Camera.Offset[2]}
	}

	id := uuid.NewString()
	s := &Session{
		id:  id,
		log: log.With(zap.String("session", id)),
		params: physics.Params{
			MoveSpeed:    cfg.Movement.MoveSpeed,
			TurnSpeed:    cfg.Movement.TurnSpeed,
			KeyLimit:     cfg.Movement.KeyLimit,
			ScaleByDelta: cfg.Movement.ScaleByDelta,
		},
		wheelSpeed: cfg.Vehicle.WheelSpeed,
		input:      input.NewAggregator(),
		bindings:   bindings,
		held:       make(map[string]input.Action),
		rig:        rig,
		state:      StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.metrics == nil {
		m, err := metrics.New(cfg.Metrics.Enabled)
		if err != nil {
			return nil, err
		}
		s.metrics = m
	}
	s.log.Debug("session created", zap.Strings("keys", bindings.Keys()), zap.Int("keyLimit", s.params.KeyLimit))
	return s, nil
}

// ID returns the session identifier attached to its log entries.
func (s *Session) ID() string { return s.id }

// Attach publishes the loaded vehicle and obstacles. A nil vehicle keeps
// the session uninitialized; a nil registry means an open arena.
func (s *Session) Attach(v *physics.Vehicle, obstacles *arena.Registry) {
	s.vehicle = v
	s.obstacles = obstacles
	if v == nil {
		return
	}
	s.log.Info("vehicle attached",
		zap.String("vehicle", v.Name),
		zap.Float64("width", v.Footprint().Width),
		zap.Float64("length", v.Footprint().Length),
		zap.Int("obstacles", obstacles.Len()),
	)
}

// Await registers a pending one-shot load. Update picks the result up
// without blocking.
func (s *Session) Await(result <-chan assets.Result) {
	s.pending = result
}

func (s *Session) poll() {
	if s.pending == nil {
		return
	}
	select {
	case res, ok := <-s.pending:
		s.pending = nil
		if !ok {
			s.loadErr = errors.New("asset loader closed without a result")
			s.log.Error("vehicle load failed", zap.Error(s.loadErr))
			return
		}
		if res.Err != nil {
			s.loadErr = res.Err
			s.log.Error("vehicle load failed", zap.Error(res.Err))
			return
		}
		s.Attach(res.Vehicle, res.Obstacles)
	default:
	}
}

// KeyDown feeds a key press. Unmapped keys are ignored and report false.
func (s *Session) KeyDown(key string) bool {
	return s.setKey(key, true)
}

// KeyUp feeds a key release.
func (s *Session) KeyUp(key string) bool {
	return s.setKey(key, false)
}

// setKey tracks keys rather than actions, so an action bound to several
// keys stays pressed until the last of them is released.
func (s *Session) setKey(key string, pressed bool) bool {
	action, ok := s.bindings.Lookup(key)
	if !ok {
		return false
	}
	k := input.NormalizeKey(key)
	if pressed {
		s.held[k] = action
	} else {
		delete(s.held, k)
	}

	down := false
	for _, a := range s.held {
		if a == action {
			down = true
			break
		}
	}
	s.input.SetAction(action, down)
	return true
}

// Update runs one tick at timestamp now (time since the driver started).
// It never fails: missing assets make it a no-op and input contention is
// reported through the warning hook.
func (s *Session) Update(now time.Duration) TickState {
	s.poll()

	dt := physics.ReferenceFrame
	if s.started && now > s.last {
		dt = now - s.last
	}
	s.last = now
	s.started = true

	if s.vehicle == nil {
		s.state = StateUninitialized
		return s.state
	}

	step := physics.Advance(s.vehicle, s.input, s.obstacles.All(), s.params, dt)
	if step.Outcome == physics.OutcomeOverLimit {
		clear(s.held)
	}
	if step.Warning != nil {
		s.warn(step.Warning)
	}
	s.state = stateFor(step.Outcome)

	s.rig.Follow(s.vehicle)
	animation.Spin(s.vehicle.Wheels(), now, s.wheelSpeed)

	s.metrics.Record(context.Background(), s.state.String())
	return s.state
}

func (s *Session) warn(err error) {
	s.log.Warn("input rejected", zap.Error(err), zap.Int("limit", s.params.KeyLimit))
	s.metrics.Warning(context.Background(), warningKind(err))
	if s.onWarning != nil {
		s.onWarning(err)
	}
}

func warningKind(err error) string {
	if errors.Is(err, physics.ErrTooManyDirections) {
		return "too_many_directions"
	}
	return "other"
}

// SetBodyColor changes the vehicle paint. It fails before the vehicle loads.
func (s *Session) SetBodyColor(hex string) error {
	if s.vehicle == nil {
		return errors.New("vehicle not loaded")
	}
	if _, err := common.ParseHexColor(hex); err != nil {
		return err
	}
	s.vehicle.BodyColor = hex
	return nil
}

// Resize updates the camera aspect ratio.
func (s *Session) Resize(width, height int) {
	s.rig.SetAspect(width, height)
}

// Ready reports whether the vehicle has been attached.
func (s *Session) Ready() bool { return s.vehicle != nil }

// State returns what the last tick did.
func (s *Session) State() TickState { return s.state }

// LoadErr returns the asset load failure, if any.
func (s *Session) LoadErr() error { return s.loadErr }

// Camera exposes the eased camera for drawing. Callers must not move it.
func (s *Session) Camera() *camera.Rig { return s.rig }

// Vehicle returns the controlled vehicle, nil until loaded.
func (s *Session) Vehicle() *physics.Vehicle { return s.vehicle }

// Obstacles returns the arena registry, nil until loaded.
func (s *Session) Obstacles() *arena.Registry { return s.obstacles }

// Pressed returns how many actions are currently held.
func (s *Session) Pressed() int { return s.input.CountPressed() }
