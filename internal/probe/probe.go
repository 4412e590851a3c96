// Package probe holds the ultrasonic probe calculations: wavelength and
// minimum element pitch from frequency and sound velocity, and the
// refraction-angle range of a wedge.
package probe

import (
	"errors"
	"math"
	"strconv"
)

// ErrZeroInput is returned when frequency or velocity is zero.
var ErrZeroInput = errors.New("frequency or velocity is zero")

// ErrOutOfRange is returned when the inputs are finite but the wavelength
// they produce is not.
var ErrOutOfRange = errors.New("wavelength out of range")

// Result holds the derived probe values, both in millimetres.
type Result struct {
	Lambda float64
	Pitch  float64
}

// ComputeProbe derives wavelength (mm) and minimum pitch (mm) from a
// frequency in MHz and a velocity in m/s.
func ComputeProbe(frequency, velocity float64) (Result, error) {
	if frequency == 0 || velocity == 0 {
		return Result{}, ErrZeroInput
	}
	lambda := velocity / 1000 / frequency
	if math.IsInf(lambda, 0) || math.IsNaN(lambda) {
		return Result{}, ErrOutOfRange
	}
	return Result{Lambda: lambda, Pitch: lambda / 2}, nil
}

// BeamAngle is an in-progress refraction calculation. Angles are in degrees,
// velocities in m/s.
type BeamAngle struct {
	IncidenceMin float64
	IncidenceMax float64

	RefractionMin float64
	RefractionMax float64

	RefractionSteelMin float64
	RefractionSteelMax float64

	VelocitySteel     float64
	VelocityIncidence float64
	VelocityMedium    float64

	Result string
}

// ComputeRefraction fills the refraction bounds of b.
//
// The bounds are a straight copy of the incidence bounds. Snell's law is not
// applied yet; callers rely on this identity mapping.
func ComputeRefraction(b BeamAngle) BeamAngle {
	b.RefractionMin = b.IncidenceMin * 1.0
	b.RefractionMax = b.IncidenceMax * 1.0
	return b
}

// FormatNumber prints v with the fewest digits that round-trip, never in
// exponent form.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
