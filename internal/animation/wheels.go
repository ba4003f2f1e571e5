package animation

import (
	"time"

	"arena-drive/internal/physics"
)

// WheelSpeed is the wheel spin rate in radians per millisecond.
const WheelSpeed = 0.005

// Spin sets every wheel's spin angle from the elapsed time alone. The rate
// does not follow the vehicle's actual speed.
func Spin(wheels []*physics.Wheel, elapsed time.Duration, speed float64) {
	angle := -speed * float64(elapsed) / float64(time.Millisecond)
	for _, w := range wheels {
		if w == nil {
			continue
		}
		w.Spin = angle
	}
}
