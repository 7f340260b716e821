package interlock

import "math"

// QuantizedExtent is the result of fitting a whole number of features
// into an available extent.
type QuantizedExtent struct {
	// Count is the number of features that fit.
	Count int
	// Physical is Count times the feature pitch, rounded to three
	// decimals to cancel division error. It reconstructs exactly from
	// Count, so repeated quantization cannot drift.
	Physical float64
}

// quantizeTol biases count rounding: fitting one more feature is
// preferred when it overflows the available extent by less than a
// quarter pitch, trading a small encroachment for denser interlocking.
const quantizeTol = 0.25

// QuantizeExtent fits features of the given pitch into extent. A
// non-positive extent or pitch quantizes to zero features; callers turn
// that into an empty placement plan rather than an error.
func QuantizeExtent(extent, pitch float64) QuantizedExtent {
	if extent <= 0 || pitch <= 0 {
		return QuantizedExtent{}
	}
	f := extent / pitch
	n := math.Floor(f)
	if math.Ceil(f)-f < quantizeTol {
		n = math.Ceil(f)
	}
	return QuantizedExtent{Count: int(n), Physical: round(n*pitch, 3)}
}

// round rounds x to the given number of decimal places.
func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
