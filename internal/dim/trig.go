package dim

import "math"

func cos(radians float64) float64 { return math.Cos(radians) }
func sin(radians float64) float64 { return math.Sin(radians) }

// DegToRad converts degrees to radians. Several Environment knobs (overhang
// angle, extrusion twist, revolve angle) are specified in degrees to match
// the surface-layer API's units, matching the kernel contract in spec §6.1.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
