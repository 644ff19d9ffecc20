package units

// Units outside the SI prefix ladder. Each is also reachable by name through
// InUnit and AsUnit ("min", "julian years", "au", "Å", "l", "km/h", "g/cm³").

// Minutes returns x minutes.
func Minutes(x float64) Time { return Time(minute.In(x)) }

// Hours returns x hours.
func Hours(x float64) Time { return Time(hour.In(x)) }

// Days returns x days.
func Days(x float64) Time { return Time(day.In(x)) }

// Weeks returns x weeks.
func Weeks(x float64) Time { return Time(week.In(x)) }

// Years returns x years of 365 days.
func Years(x float64) Time { return Time(year.In(x)) }

// JulianYears returns x Julian years of 365.25 days.
func JulianYears(x float64) Time { return Time(julianYear.In(x)) }

// Minutes returns t in minutes.
func (t Time) Minutes() Magnitude { return minute.As(float64(t)) }

// Hours returns t in hours.
func (t Time) Hours() Magnitude { return hour.As(float64(t)) }

// Days returns t in days.
func (t Time) Days() Magnitude { return day.As(float64(t)) }

// Weeks returns t in weeks.
func (t Time) Weeks() Magnitude { return week.As(float64(t)) }

// Years returns t in years of 365 days.
func (t Time) Years() Magnitude { return year.As(float64(t)) }

// JulianYears returns t in Julian years.
func (t Time) JulianYears() Magnitude { return julianYear.As(float64(t)) }

// AstronomicalUnits returns x astronomical units.
func AstronomicalUnits(x float64) Length { return Length(astronomicalUnit.In(x)) }

// Angstroms returns x ångströms.
func Angstroms(x float64) Length { return Length(angstrom.In(x)) }

// AstronomicalUnits returns d in astronomical units.
func (d Length) AstronomicalUnits() Magnitude { return astronomicalUnit.As(float64(d)) }

// Angstroms returns d in ångströms.
func (d Length) Angstroms() Magnitude { return angstrom.As(float64(d)) }

// Litres returns x litres.
func Litres(x float64) Volume { return Volume(litre.In(x)) }

// Litres returns v in litres.
func (v Volume) Litres() Magnitude { return litre.As(float64(v)) }

// KilometresPerHour returns x kilometres per hour.
func KilometresPerHour(x float64) Speed { return Speed(kilometrePerHour.In(x)) }

// KilometresPerHour returns s in kilometres per hour.
func (s Speed) KilometresPerHour() Magnitude { return kilometrePerHour.As(float64(s)) }

// GramsPerCubicCentimetre returns x grams per cubic centimetre.
func GramsPerCubicCentimetre(x float64) Density {
	return Density(gramPerCubicCentimetre.In(x))
}

// GramsPerCubicCentimetre returns d in grams per cubic centimetre.
func (d Density) GramsPerCubicCentimetre() Magnitude {
	return gramPerCubicCentimetre.As(float64(d))
}
