package phase

// NonFlammableC is reported as the flash point of charges with almost no
// ethanol.
const NonFlammableC = 100.0

// flashSentinelBelow is the fraction under which the flash-point curve
// reports NonFlammableC.
const flashSentinelBelow = 0.01

// Boiling point (°C) of ethanol/water at 1 atm vs ethanol volume fraction.
var boilingPoints = []Point{
	{0.0, 100.0}, {0.1, 92.7}, {0.2, 87.7}, {0.3, 84.4}, {0.4, 82.5}, {0.5, 81.3},
	{0.6, 80.5}, {0.7, 79.8}, {0.8, 79.1}, {0.9, 78.5}, {1.0, 78.4},
}

// Flash point (°C) vs ethanol volume fraction.
var flashPoints = []Point{
	{0.05, 62}, {0.10, 49}, {0.20, 36}, {0.30, 29}, {0.40, 26},
	{0.60, 22}, {0.80, 19}, {0.96, 17}, {1.0, 13},
}

var (
	boiling = mustCurve(boilingPoints)
	flash   = mustCurve(flashPoints).WithSentinel(flashSentinelBelow, NonFlammableC)
)

func mustCurve(pts []Point) *Curve {
	c, err := NewCurve(pts)
	if err != nil {
		panic(err)
	}
	return c
}

// BoilingCurve returns the shared boiling-point curve.
func BoilingCurve() *Curve { return boiling }

// FlashCurve returns the shared flash-point curve.
func FlashCurve() *Curve { return flash }
