// Package sun computes solar position and clear-sky attenuation, the inputs
// feeding per-cell irradiance ratios. Occlusion ray-tests live outside this
// module; shading arrives as a factor already folded into the ratio.
package sun

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Settings describes the observer: site coordinates, date, and local clock
// hour (fractional).
type Settings struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Month     int     // 1..12
	Day       int     // 1..31
	Hour      float64 // local clock time, 0..24
}

// Position returns the unit direction toward the sun plus its altitude and
// azimuth in degrees, using the simplified NOAA solar position method
// (equation of time plus declination series). Below the horizon the direction
// points straight down.
func Position(s Settings) (dir Vec3, altitude, azimuth float64) {
	lat := clamp(s.Latitude, -89, 89) * deg2rad

	doy := (s.Month-1)*30 + s.Day
	if doy < 1 {
		doy = 1
	}
	if doy > 365 {
		doy = 365
	}

	// Fractional year for the equation of time and declination.
	gamma := 2 * math.Pi / 365 * float64(doy-1)

	// Equation of time (minutes): correction for the elliptical orbit.
	eqtime := 229.18 * (0.000075 + 0.001868*math.Cos(gamma) - 0.032077*math.Sin(gamma) -
		0.014615*math.Cos(2*gamma) - 0.040849*math.Sin(2*gamma))

	// Solar declination (radians).
	decl := 0.006918 - 0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2*gamma) + 0.000907*math.Sin(2*gamma) -
		0.002697*math.Cos(3*gamma) + 0.00148*math.Sin(3*gamma)

	// Standard timezone from longitude (15 degrees per hour), then clock time
	// to solar time. Earth rotates one degree every four minutes.
	tzOffset := math.Round(s.Longitude / 15)
	lonCorrection := 4 * (s.Longitude - tzOffset*15)
	solarMinutes := s.Hour*60 + lonCorrection + eqtime

	// Hour angle: zero at solar noon, negative mornings.
	ha := solarMinutes/4 - 180
	haRad := ha * deg2rad

	cosZen := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(haRad)
	cosZen = clamp(cosZen, -1, 1)
	zenith := math.Acos(cosZen)
	altitude = 90 - zenith*rad2deg

	sinZen := math.Sin(zenith)
	azimuth = 180.0
	if math.Abs(sinZen) > 0.001 {
		cosAz := (math.Sin(decl) - math.Sin(lat)*cosZen) / (math.Cos(lat) * sinZen)
		cosAz = clamp(cosAz, -1, 1)
		azimuth = math.Acos(cosAz) * rad2deg
		if ha > 0 {
			azimuth = 360 - azimuth
		}
	}

	if altitude <= 0 {
		return Vec3{0, -1, 0}, altitude, azimuth
	}

	altRad := altitude * deg2rad
	azRad := azimuth * deg2rad
	dir = Vec3{
		X: math.Cos(altRad) * math.Sin(azRad),
		Y: math.Sin(altRad),
		Z: -math.Cos(altRad) * math.Cos(azRad),
	}.Normalize()
	return dir, altitude, azimuth
}

// Attenuation returns the clear-sky atmospheric transmission for the given
// solar altitude in degrees: 0.7^(AM^0.678), with air mass AM = 1/sin(alt).
// Zero below the horizon.
func Attenuation(altitudeDeg float64) float64 {
	if altitudeDeg <= 0 {
		return 0
	}
	sinAlt := math.Sin(altitudeDeg * deg2rad)
	airMass := 1 / math.Max(sinAlt, 0.01)
	return math.Pow(0.7, math.Pow(airMass, 0.678))
}

// IrradianceRatio composes a cell's irradiance ratio relative to STC from the
// effective sky irradiance (W/m2, already attenuated) and the incidence
// cosine. Back-facing cells get zero.
func IrradianceRatio(normal, sunDir Vec3, effectiveIrradiance float64) float64 {
	facing := normal.Dot(sunDir)
	if facing <= 0 || effectiveIrradiance <= 0 {
		return 0
	}
	ratio := effectiveIrradiance / 1000 * facing
	if ratio > 1 {
		ratio = 1
	}
	return ratio
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
