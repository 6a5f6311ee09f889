package vmath

import "math"

const (
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// cosLUT holds one full turn of cosine samples
var cosLUT [LUTSize]float64

func init() {
	for i := 0; i < LUTSize; i++ {
		cosLUT[i] = math.Cos(2 * math.Pi * float64(i) / LUTSize)
	}
}

// cosTurn returns cos(2π·turns) via table lookup
func cosTurn(turns float64) float64 {
	idx := int(turns*LUTSize+0.5) & LUTMask
	return cosLUT[idx]
}

// NormalizeDegrees wraps an angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
