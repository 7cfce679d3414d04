package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// GonumNormalCDF evaluates the standard normal CDF via gonum
type GonumNormalCDF struct {
	dist distuv.Normal
}

// NewNormalCDF creates a standard normal CDF adapter
func NewNormalCDF() *GonumNormalCDF {
	return &GonumNormalCDF{dist: distuv.Normal{Mu: 0, Sigma: 1}}
}

// CDF returns P(Z <= x) for a standard normal Z
func (n *GonumNormalCDF) CDF(x float64) float64 {
	return n.dist.CDF(x)
}
