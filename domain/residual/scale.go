package residual

import (
	"math"

	"github.com/montanaflynn/stats"
)

// DivergingDomain returns the symmetric color domain for a record set:
// [-max|r|, +max|r|], so a zero residual always maps to the scale's neutral
// midpoint regardless of how skewed the data is.
func DivergingDomain(s *RecordSet) (lo, hi float64) {
	maxAbs := s.MaxAbsResidual()
	return -maxAbs, maxAbs
}

// RescaleWidths maps residual magnitudes linearly into [minWidth, maxWidth].
// The smallest magnitude in the slice maps to minWidth and the largest to
// maxWidth; this is a per-call relative scaling, not an absolute one. When all
// magnitudes are equal the midpoint width is used.
func RescaleWidths(magnitudes []float64, minWidth, maxWidth float64) []float64 {
	if len(magnitudes) == 0 {
		return nil
	}

	lo, err := stats.Min(magnitudes)
	if err != nil {
		return nil
	}
	hi, err := stats.Max(magnitudes)
	if err != nil {
		return nil
	}

	out := make([]float64, len(magnitudes))
	if hi == lo {
		mid := (minWidth + maxWidth) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	span := maxWidth - minWidth
	for i, m := range magnitudes {
		out[i] = minWidth + span*(m-lo)/(hi-lo)
	}
	return out
}

// Magnitudes extracts |residual| per record in record order
func Magnitudes(s *RecordSet) []float64 {
	out := make([]float64, len(s.Records))
	for i, r := range s.Records {
		out[i] = math.Abs(r.Residual)
	}
	return out
}
