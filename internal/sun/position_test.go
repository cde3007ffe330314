package sun

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paloAlto() Settings {
	return Settings{Latitude: 37.4, Longitude: -122.1, Month: 6, Day: 21}
}

func TestPositionSummerNoon(t *testing.T) {
	s := paloAlto()
	s.Hour = 12

	dir, altitude, azimuth := Position(s)

	// Near the summer solstice the noon sun stands high at mid latitudes.
	assert.Greater(t, altitude, 60.0)
	assert.Less(t, altitude, 90.0)
	assert.InDelta(t, 1.0, dir.Length(), 1e-9)
	assert.Greater(t, dir.Y, 0.85)
	assert.Greater(t, azimuth, 90.0)
	assert.Less(t, azimuth, 270.0)
}

func TestPositionNight(t *testing.T) {
	s := paloAlto()
	s.Hour = 1

	dir, altitude, _ := Position(s)
	assert.Less(t, altitude, 0.0)
	assert.Equal(t, Vec3{0, -1, 0}, dir)
}

func TestPositionMorningLowerThanNoon(t *testing.T) {
	s := paloAlto()

	s.Hour = 8
	_, morning, _ := Position(s)
	s.Hour = 12
	_, noon, _ := Position(s)

	require.Greater(t, morning, 0.0)
	assert.Greater(t, noon, morning)
}

func TestPositionWinterLowerThanSummer(t *testing.T) {
	s := paloAlto()
	s.Hour = 12
	_, summer, _ := Position(s)

	s.Month = 12
	_, winter, _ := Position(s)

	assert.Greater(t, summer, winter)
	assert.Greater(t, winter, 0.0)
}

func TestAttenuation(t *testing.T) {
	assert.Zero(t, Attenuation(0))
	assert.Zero(t, Attenuation(-10))

	// Overhead sun passes one air mass.
	assert.InDelta(t, 0.7, Attenuation(90), 1e-9)

	// More atmosphere means more loss.
	assert.Greater(t, Attenuation(60), Attenuation(20))
	assert.Greater(t, Attenuation(20), Attenuation(5))
	assert.Greater(t, Attenuation(5), 0.0)
}

func TestIrradianceRatio(t *testing.T) {
	up := Vec3{0, 1, 0}

	assert.InDelta(t, 0.5, IrradianceRatio(up, up, 500), 1e-9)
	assert.InDelta(t, 1.0, IrradianceRatio(up, up, 1000), 1e-9)

	// Capped at STC even for super-nominal irradiance.
	assert.InDelta(t, 1.0, IrradianceRatio(up, up, 1500), 1e-9)

	// Back-facing or dark means zero.
	assert.Zero(t, IrradianceRatio(up, Vec3{0, -1, 0}, 1000))
	assert.Zero(t, IrradianceRatio(up, up, 0))

	// Oblique incidence scales with the cosine.
	tilted := Vec3{1, 1, 0}.Normalize()
	assert.InDelta(t, math.Cos(math.Pi/4), IrradianceRatio(up, tilted, 1000), 1e-9)
}

func TestVec3RotateY(t *testing.T) {
	v := Vec3{1, 0, 0}

	r := v.RotateY(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, 1e-9)
	assert.InDelta(t, 1.0, r.Z, 1e-9)

	// Full turn is identity.
	r = v.RotateY(2 * math.Pi)
	assert.InDelta(t, 1.0, r.X, 1e-9)
	assert.InDelta(t, 0.0, r.Z, 1e-9)

	// Rotation preserves length and height.
	tilted := Vec3{0.3, 0.8, -0.5}
	rt := tilted.RotateY(1.234)
	assert.InDelta(t, tilted.Length(), rt.Length(), 1e-9)
	assert.InDelta(t, tilted.Y, rt.Y, 1e-9)
}

func TestVec3Normalize(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	n := Vec3{3, 4, 0}.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.InDelta(t, 0.6, n.X, 1e-9)
}
