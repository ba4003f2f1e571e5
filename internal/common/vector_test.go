package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestYawRotationTurnsForwardToTheLeft(t *testing.T) {
	forward := mgl64.Vec3{0, 0, -1}

	got := YawRotation(math.Pi / 2).Rotate(forward)

	assert.InDelta(t, -1.0, got.X(), 1e-9)
	assert.InDelta(t, 0.0, got.Y(), 1e-9)
	assert.InDelta(t, 0.0, got.Z(), 1e-9)
}

func TestYawRotationIsPeriodic(t *testing.T) {
	v := mgl64.Vec3{1, 2, 3}

	a := YawRotation(0.3).Rotate(v)
	b := YawRotation(0.3 + 2*math.Pi).Rotate(v)

	assert.True(t, a.ApproxEqualThreshold(b, 1e-9))
}

func TestLerp3(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{10, -10, 20}

	assert.Equal(t, a, Lerp3(a, b, 0))
	assert.True(t, Lerp3(a, b, 1).ApproxEqual(b))
	assert.True(t, Lerp3(a, b, 0.1).ApproxEqual(mgl64.Vec3{1, -1, 2}))
}

func TestFlatAndLift(t *testing.T) {
	p := Flat(mgl64.Vec3{4, 9, -2})

	assert.Equal(t, Vec2{X: 4, Z: -2}, p)
	assert.Equal(t, mgl64.Vec3{4, 1, -2}, p.Lift(1))
	assert.Equal(t, Vec2{X: 8, Z: -4}, p.Add(p))
	assert.Equal(t, Vec2{}, p.Sub(p))
	assert.Equal(t, Vec2{X: 2, Z: -1}, p.Scale(0.5))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)

	for _, bad := range []string{"", "ff8000", "#ff80", "#gg0000"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}
