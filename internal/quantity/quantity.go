// Package quantity holds the physical quantities the plots know how to label.
// Values are stored in CGS units; MKS display goes through DisplayFactor.
package quantity

import (
	"fmt"
	"strings"
)

// Index addresses a row of the quantity table.
type Index int

const (
	Length Index = iota
	Mass
	Time
	Area
	Force
	Momentum
	Frequency
	Angle
	AngularVelocity
	Pressure
	MassFlow
	Density
	VolumeVelocity
	Temperature
	Ratio
	Velocity

	numQuantities
)

// PhysicalQuantity describes a single quantity and its two unit systems.
type PhysicalQuantity struct {
	Name           string
	Symbol         string
	MKSUnit        string
	CGSUnit        string
	MKSToCGSFactor float64 // value_cgs = value_mks * factor
}

var table = [numQuantities]PhysicalQuantity{
	Length:          {"length", "l", "m", "cm", 100},
	Mass:            {"mass", "m", "kg", "g", 1000},
	Time:            {"time", "t", "s", "s", 1},
	Area:            {"area", "A", "m^2", "cm^2", 10000},
	Force:           {"force", "F", "N", "dyne", 100000},
	Momentum:        {"momentum", "(mv)", "N-s", "dyne-s", 100000},
	Frequency:       {"frequency", "f", "Hz", "Hz", 1},
	Angle:           {"angle", "phi", "rad", "rad", 1},
	AngularVelocity: {"angular velocity", "omega", "rad/s", "rad/s", 1},
	Pressure:        {"pressure", "P", "Pa", "dPa", 10},
	MassFlow:        {"mass flow", "dm/dt", "kg/s", "g/s", 1000},
	Density:         {"density", "rho", "kg/m^3", "g/cm^3", 0.001},
	VolumeVelocity:  {"volume velocity", "dV/dt", "m^3/s", "cm^3/s", 1000000},
	Temperature:     {"temperature", "T", "K", "-", 1},
	Ratio:           {"ratio", "", "", "", 1},
	Velocity:        {"velocity", "v", "m/s", "cm/s", 100},
}

// Quantity returns the table row. Out-of-range indices resolve to Ratio.
func (i Index) Quantity() PhysicalQuantity {
	if i < 0 || i >= numQuantities {
		return table[Ratio]
	}
	return table[i]
}

// Unit returns the unit string shown next to an axis.
func (i Index) Unit(cgs bool) string {
	q := i.Quantity()
	if cgs {
		return q.CGSUnit
	}
	return q.MKSUnit
}

// DisplayFactor converts a stored (CGS) value into the selected unit system.
func (i Index) DisplayFactor(cgs bool) float64 {
	if cgs {
		return 1
	}
	return 1 / i.Quantity().MKSToCGSFactor
}

func (i Index) String() string {
	return i.Quantity().Name
}

// All returns a copy of the table in index order.
func All() []PhysicalQuantity {
	out := make([]PhysicalQuantity, len(table))
	copy(out, table[:])
	return out
}

// Parse looks a quantity up by name, case-insensitively. Underscores and
// dashes may stand in for spaces ("volume_velocity").
func Parse(name string) (Index, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)

	for i, q := range table {
		if q.Name == key {
			return Index(i), nil
		}
	}
	return Ratio, fmt.Errorf("unknown physical quantity: %q", name)
}
