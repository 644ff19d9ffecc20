package units

import (
	"strings"

	"github.com/hupe1980/fisika/prefix"
	"github.com/hupe1980/fisika/unit"
	"github.com/hupe1980/fisika/vector"
)

var gfsMeta = unit.NewMetadata("GravitationalFieldStrength", unit.Vector, newton,
	unit.Per(unit.Term{Symbol: "g", Singular: "gram", Shift: 3, Base: prefix.Kilo}))

// GravitationalFieldStrength is the force of gravity per unit mass, in newtons
// per kilogram.
type GravitationalFieldStrength struct {
	d vector.Direction
}

// Gfs is short for GravitationalFieldStrength.
type Gfs = GravitationalFieldStrength

// NewGfs returns the field d, in newtons per kilogram.
func NewGfs(d vector.Direction) GravitationalFieldStrength {
	return GravitationalFieldStrength{d}
}

// GfsIn returns the field d given in p-prefixed newtons per kilogram.
func GfsIn(p prefix.Prefix, d vector.Direction) GravitationalFieldStrength {
	return GravitationalFieldStrength{inDirection(gfsMeta, p, d)}
}

// GfsAlong returns the field of strength m along axis.
func GfsAlong(m Magnitude, axis vector.Direction) GravitationalFieldStrength {
	return GravitationalFieldStrength{along(m, axis)}
}

// GfsFromWeightMass derives the field in which m weighs w (g = W / m),
// oriented like w.
func GfsFromWeightMass(w Weight, m Mass) GravitationalFieldStrength {
	return GravitationalFieldStrength{w.d.Div(float64(m))}
}

// GfsFromMassWeight is GfsFromWeightMass with the arguments swapped.
func GfsFromMassWeight(m Mass, w Weight) GravitationalFieldStrength {
	return GfsFromWeightMass(w, m)
}

// CalcWeight returns the weight of m in g (W = m × g), oriented like g.
func (g GravitationalFieldStrength) CalcWeight(m Mass) Weight {
	return Force{g.d.Scale(float64(m))}
}

// CalcMass returns the mass weighing w in g (m = W / g).
func (g GravitationalFieldStrength) CalcMass(w Weight) Mass {
	return Mass(w.Magnitude() / g.Magnitude())
}

func (g GravitationalFieldStrength) Direction() vector.Direction { return g.d }

func (g GravitationalFieldStrength) Metadata() *unit.Metadata { return gfsMeta }

func (g GravitationalFieldStrength) Magnitude() Magnitude { return g.d.Magnitude() }

// As returns g in p-prefixed newtons per kilogram, as magnitude and components.
func (g GravitationalFieldStrength) As(p prefix.Prefix) (Magnitude, vector.Direction) {
	return gfsMeta.As(p, g.Magnitude()), asDirection(gfsMeta, p, g.d)
}

func (g GravitationalFieldStrength) String() string { return format(gfsMeta, g.Magnitude()) }

func (g GravitationalFieldStrength) Long() string { return formatLong(gfsMeta, g.Magnitude()) }

// Surface gravitational field strengths, pointing along +Y.
var (
	GfsMercury = GfsAlong(3.8, vector.UnitY)
	GfsVenus   = GfsAlong(8.8, vector.UnitY)
	GfsEarth   = GfsAlong(9.8, vector.UnitY)
	GfsMars    = GfsAlong(3.8, vector.UnitY)
	GfsJupiter = GfsAlong(25, vector.UnitY)
	GfsSaturn  = GfsAlong(10.4, vector.UnitY)
	GfsUranus  = GfsAlong(10.4, vector.UnitY)
	GfsNeptune = GfsAlong(13.8, vector.UnitY)
	GfsMoon    = GfsAlong(1.6, vector.UnitY)
	GfsPluto   = GfsAlong(0.49, vector.UnitY)
	GfsCeres   = GfsAlong(0.27, vector.UnitY)
	GfsSun     = GfsAlong(293, vector.UnitY)
)

var gfsBodies = map[string]GravitationalFieldStrength{
	"mercury": GfsMercury,
	"venus":   GfsVenus,
	"earth":   GfsEarth,
	"mars":    GfsMars,
	"jupiter": GfsJupiter,
	"saturn":  GfsSaturn,
	"uranus":  GfsUranus,
	"neptune": GfsNeptune,
	"moon":    GfsMoon,
	"pluto":   GfsPluto,
	"ceres":   GfsCeres,
	"sun":     GfsSun,
}

// GfsOn returns the surface field strength of the named body, e.g. "Mars".
func GfsOn(body string) (GravitationalFieldStrength, bool) {
	g, ok := gfsBodies[strings.ToLower(strings.TrimSpace(body))]
	return g, ok
}
