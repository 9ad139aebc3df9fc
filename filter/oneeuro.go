package filter

import "math"

// minDtMs guards against zero or negative timestamp deltas from an
// out-of-order tracking stream.
const minDtMs = 1.0

// OneEuro is an adaptive low-pass filter for one axis of a noisy pointer
// stream. Faster motion raises the cutoff (less lag), slower motion lowers
// it (less jitter). One instance per axis.
type OneEuro struct {
	minCutoff float64
	beta      float64
	dCutoff   float64

	initialized bool
	prevRaw     float64
	prevOut     float64
	prevDeriv   float64
	prevStampMs float64
}

// NewOneEuro returns a filter with the given baseline cutoff, speed
// coefficient and derivative cutoff, all in Hz except beta.
func NewOneEuro(minCutoff, beta, dCutoff float64) *OneEuro {
	return &OneEuro{
		minCutoff: minCutoff,
		beta:      beta,
		dCutoff:   dCutoff,
	}
}

// Filter smooths raw at the given timestamp (milliseconds). The first call
// after construction or Reset returns raw unchanged so a fresh session has
// no smoothing latency.
func (f *OneEuro) Filter(raw, timestampMs float64) float64 {
	if !f.initialized {
		f.initialized = true
		f.prevRaw = raw
		f.prevOut = raw
		f.prevDeriv = 0
		f.prevStampMs = timestampMs
		return raw
	}

	dtMs := timestampMs - f.prevStampMs
	if dtMs < minDtMs {
		dtMs = minDtMs
	}
	dt := dtMs / 1000.0

	deriv := (raw - f.prevRaw) / dt
	smoothDeriv := lowpass(deriv, f.prevDeriv, alpha(f.dCutoff, dt))

	cutoff := f.minCutoff + f.beta*math.Abs(smoothDeriv)
	out := lowpass(raw, f.prevOut, alpha(cutoff, dt))

	f.prevRaw = raw
	f.prevOut = out
	f.prevDeriv = smoothDeriv
	f.prevStampMs = timestampMs
	return out
}

// Reset clears the filter state so the next sample is taken as ground
// truth. Used when tracking is lost and regained, to avoid smoothing across
// the discontinuity.
func (f *OneEuro) Reset() {
	f.initialized = false
}

// alpha computes the exponential smoothing coefficient for a cutoff
// frequency (Hz) and a time step (seconds).
func alpha(cutoff, dt float64) float64 {
	tau := 1.0 / (2.0 * math.Pi * cutoff)
	return 1.0 / (1.0 + tau/dt)
}

func lowpass(value, prev, a float64) float64 {
	return a*value + (1.0-a)*prev
}
