package units

import (
	"strings"

	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

// Definition pairs a quantity's metadata with a constructor from a canonical
// magnitude.
type Definition struct {
	*unit.Metadata
	Aliases []string
	newFn   func(Magnitude) Quantity
}

// New returns the quantity of magnitude m in the canonical unit. Vector
// quantities point along +X.
func (d Definition) New(m Magnitude) Quantity {
	return d.newFn(m)
}

// Names returns the quantity name followed by its aliases.
func (d Definition) Names() []string {
	return append([]string{d.Quantity()}, d.Aliases...)
}

func scalarDef[Q interface {
	Scalar
	Quantity
}](md *unit.Metadata, aliases ...string) Definition {
	return Definition{
		Metadata: md,
		Aliases:  aliases,
		newFn:    func(m Magnitude) Quantity { return Q(m) },
	}
}

func vectorDef[Q Quantity](md *unit.Metadata, fn func(Magnitude, vector.Direction) Q, aliases ...string) Definition {
	return Definition{
		Metadata: md,
		Aliases:  aliases,
		newFn:    func(m Magnitude) Quantity { return fn(m, vector.UnitX) },
	}
}

var catalogue = []Definition{
	scalarDef[Time](timeMeta),
	scalarDef[Length](lengthMeta, "Distance", "Height"),
	scalarDef[Mass](massMeta),
	scalarDef[Current](currentMeta),
	scalarDef[Temperature](temperatureMeta),
	scalarDef[Intensity](intensityMeta),
	scalarDef[Amount](amountMeta),
	scalarDef[Area](areaMeta),
	scalarDef[Volume](volumeMeta),
	scalarDef[Density](densityMeta),
	scalarDef[Energy](energyMeta, "Work"),
	scalarDef[Power](powerMeta),
	scalarDef[Frequency](frequencyMeta),
	scalarDef[Pressure](pressureMeta),
	scalarDef[Charge](chargeMeta),
	scalarDef[Speed](speedMeta),
	vectorDef(velocityMeta, VelocityAlong),
	vectorDef(accelerationMeta, AccelerationAlong),
	vectorDef(forceMeta, ForceAlong, "Weight"),
	vectorDef(momentMeta, MomentAlong, "Torque"),
	vectorDef(momentumMeta, MomentumAlong),
	vectorDef(gfsMeta, GfsAlong, "Gfs"),
}

// Catalogue returns every quantity, scalars first, base quantities before
// derived ones.
func Catalogue() []Definition {
	out := make([]Definition, len(catalogue))
	copy(out, catalogue)
	return out
}

// Find returns the quantity called name or one of its aliases, ignoring case.
func Find(name string) (Definition, bool) {
	name = strings.TrimSpace(name)
	for _, d := range catalogue {
		for _, n := range d.Names() {
			if strings.EqualFold(n, name) {
				return d, true
			}
		}
	}
	return Definition{}, false
}
