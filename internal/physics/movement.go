package physics

import (
	"errors"
	"time"

	"arena-drive/internal/arena"
	"arena-drive/internal/input"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MoveSpeed = 0.2  // World units per tick
	TurnSpeed = 0.01 // Radians per tick
)

// ReferenceFrame is the tick length the per-tick speeds are tuned for.
const ReferenceFrame = time.Second / 60

// ErrTooManyDirections is the warning raised when more actions are held
// than the key limit allows. The held input is cleared when it fires.
var ErrTooManyDirections = errors.New("too many directions pressed")

// Params tunes the movement step.
type Params struct {
	MoveSpeed float64
	TurnSpeed float64
	KeyLimit  int

	// ScaleByDelta multiplies both speeds by dt/ReferenceFrame so travel
	// no longer depends on frame rate. Off by default.
	ScaleByDelta bool
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MoveSpeed: MoveSpeed,
		TurnSpeed: TurnSpeed,
		KeyLimit:  input.DefaultKeyLimit,
	}
}

func (p Params) scale(dt time.Duration) float64 {
	if !p.ScaleByDelta || dt <= 0 {
		return 1
	}
	return float64(dt) / float64(ReferenceFrame)
}

// InputSource is what the movement step needs from the input aggregator.
type InputSource interface {
	Snapshot() input.ActionSet
	ResetAll()
}

// Outcome classifies what a tick did to the vehicle.
type Outcome uint8

const (
	OutcomeIdle Outcome = iota
	OutcomeMoved
	OutcomeBlocked
	OutcomeOverLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeOverLimit:
		return "over_limit"
	default:
		return "unknown"
	}
}

// Step is the result of one movement computation.
type Step struct {
	Transform Transform // Candidate pose
	Allowed   bool      // False when the tick must not move the vehicle
	Warning   error     // Non-fatal, user-visible
	Outcome   Outcome
}

// ComputeCandidate turns the held input and current pose into a candidate
// pose. Input is sampled once; turning is applied before thrust so the
// displacement follows the updated heading.
func ComputeCandidate(v *Vehicle, in InputSource, p Params, dt time.Duration) Step {
	current := v.Transform()
	held := in.Snapshot()

	// 1. Nothing held
	pressed := held.Count()
	if pressed == 0 || !v.Controllable {
		return Step{Transform: current, Outcome: OutcomeIdle}
	}

	// 2. Over the contention limit: clear input and skip the tick
	if pressed > p.KeyLimit {
		in.ResetAll()
		return Step{Transform: current, Warning: ErrTooManyDirections, Outcome: OutcomeOverLimit}
	}

	k := p.scale(dt)

	// 3. Turning. Opposing keys cancel.
	yaw := current.Yaw
	if held.Has(input.ActionLeft) {
		yaw += p.TurnSpeed * k
	}
	if held.Has(input.ActionRight) {
		yaw -= p.TurnSpeed * k
	}

	// 4. Thrust in vehicle space, -z is forward. Opposing keys cancel.
	local := mgl64.Vec3{}
	if held.Has(input.ActionForward) {
		local[2] -= p.MoveSpeed * k
	}
	if held.Has(input.ActionBackward) {
		local[2] += p.MoveSpeed * k
	}

	candidate := Transform{Yaw: yaw}
	candidate.Position = current.Position.Add(candidate.ToWorld(local))

	return Step{Transform: candidate, Allowed: true, Outcome: OutcomeMoved}
}

// Advance runs one movement tick: compute the candidate, test it against
// the obstacles, and commit. A blocked candidate keeps the old position
// but still takes the new heading.
func Advance(v *Vehicle, in InputSource, obstacles []arena.Obstacle, p Params, dt time.Duration) Step {
	step := ComputeCandidate(v, in, p, dt)
	if !step.Allowed {
		return step
	}

	if IsBlocked(step.Transform.Position, v.footprint, obstacles) {
		v.transform.Yaw = step.Transform.Yaw
		step.Outcome = OutcomeBlocked
		return step
	}

	v.transform = step.Transform
	return step
}
