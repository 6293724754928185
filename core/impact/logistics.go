// core/impact/logistics.go
// Transport modes and their emission factors (kg CO2e per liter per km).

package impact

import (
	"fmt"
	"strings"
)

// Mode is a transport mode.
type Mode int

const (
	ModeTruck Mode = iota
	ModeRail
	ModeShip
)

// Modes lists every known mode in declaration order.
var Modes = []Mode{ModeTruck, ModeRail, ModeShip}

func (m Mode) String() string {
	switch m {
	case ModeTruck:
		return "TRUCK"
	case ModeRail:
		return "RAIL"
	case ModeShip:
		return "SHIP"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive name to a Mode. Unrecognized names
// yield ModeTruck and ok=false, matching the lenient factor lookup.
func ParseMode(s string) (m Mode, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUCK":
		return ModeTruck, true
	case "RAIL":
		return ModeRail, true
	case "SHIP":
		return ModeShip, true
	default:
		return ModeTruck, false
	}
}

// Logistics holds one emission factor per mode.
type Logistics struct {
	truck, rail, ship float64
}

// NewLogistics requires a factor for every mode in Modes.
func NewLogistics(factors map[Mode]float64) (*Logistics, error) {
	for _, m := range Modes {
		if _, ok := factors[m]; !ok {
			return nil, fmt.Errorf("impact: missing emission factor for %s", m)
		}
	}
	return &Logistics{
		truck: factors[ModeTruck],
		rail:  factors[ModeRail],
		ship:  factors[ModeShip],
	}, nil
}

// FactorFor returns the factor for m. Any mode outside Modes gets the truck
// factor rather than an error.
func (l *Logistics) FactorFor(m Mode) float64 {
	switch m {
	case ModeRail:
		return l.rail
	case ModeShip:
		return l.ship
	default:
		return l.truck
	}
}

// TransportCarbon is the carbon (kg CO2e) of moving volumeL liters distanceKm by m.
func (l *Logistics) TransportCarbon(volumeL, distanceKm float64, m Mode) float64 {
	return volumeL * distanceKm * l.FactorFor(m)
}
