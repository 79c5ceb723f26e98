// units.go — the unit/value model and same-category conversion.
//
// Every convertible unit belongs to exactly one Category and stores a fixed
// multiplicative ratio to that category's base unit (meter, gram, second,
// square meter, cubic meter, bit, radian, m/s, pascal, joule, pixel).
// Conversion inside a category is value*ratio(from)/ratio(to).
//
// Two categories sidestep the ratio mechanism:
//   - temperature converts through pairwise Celsius/Fahrenheit/Kelvin
//     formulas (the scales do not share a zero);
//   - currency ratios are supplied at runtime by a RateTable snapshot
//     (see rates.go).
//
// Display-only pseudo-kinds (percent, hex, binary, octal, scientific, date,
// elapsed duration) carry no ratio and never enter conversion arithmetic;
// they only change how a number is rendered.
package sumpad

import "fmt"

// Category groups conversion-compatible units. Conversion is only ever
// valid within one category.
type Category int

const (
	CatNone Category = iota
	CatLength
	CatWeight
	CatTemperature
	CatArea
	CatVolume
	CatTime
	CatData
	CatAngle
	CatSpeed
	CatPressure
	CatEnergy
	CatPixel
	CatCurrency
)

// UnitKind enumerates every unit the engine knows about.
type UnitKind int

const (
	UnitNone UnitKind = iota

	// Length (base: meter)
	Millimeter
	Centimeter
	Meter
	Kilometer
	Inch
	Foot
	Yard
	Mile
	NauticalMile

	// Weight (base: gram)
	Milligram
	Gram
	Kilogram
	Tonne
	Ounce
	Pound
	Stone

	// Temperature (pairwise formulas, no ratio)
	Celsius
	Fahrenheit
	Kelvin

	// Area (base: square meter)
	SquareMeter
	SquareKilometer
	SquareFoot
	SquareInch
	Acre
	Hectare

	// Volume (base: cubic meter)
	Milliliter
	Liter
	CubicMeter
	Teaspoon
	Tablespoon
	FluidOunce
	Cup
	Pint
	Quart
	Gallon

	// Time (base: second)
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year

	// Data (base: bit)
	Bit
	Byte
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
	Kibibyte
	Mebibyte
	Gibibyte
	Tebibyte

	// Angle (base: radian)
	Radian
	Degree
	Gradian
	Turn

	// Speed (base: meter/second)
	MeterPerSecond
	KilometerPerHour
	MilePerHour
	Knot
	FootPerSecond

	// Pressure (base: pascal)
	Pascal
	Kilopascal
	Bar
	Atmosphere
	PSI
	MillimeterMercury

	// Energy (base: joule)
	Joule
	Kilojoule
	Calorie
	Kilocalorie
	WattHour
	KilowattHour
	BTU

	// CSS pixels (base: pixel; em/rem assume the conventional 16px root)
	Pixel
	Em
	Rem
	Point

	// CurrencyKind units carry their code in Unit.Code.
	CurrencyKind

	// Display-only pseudo-units.
	Percent
	Hex
	Binary
	Octal
	Scientific
	DateKind
	ElapsedDuration
)

// Unit is a tagged unit value. Code is set only for CurrencyKind.
type Unit struct {
	Kind UnitKind
	Code string
}

// NoUnit is the zero Unit, meaning "plain number".
var NoUnit = Unit{}

// CurrencyUnit builds a currency unit for an upper-case fiat or crypto code.
func CurrencyUnit(code string) Unit { return Unit{Kind: CurrencyKind, Code: code} }

// Value is the immutable number+unit pair produced by the evaluator.
type Value struct {
	Num  float64
	Unit Unit
}

// Number returns a unitless Value.
func Number(n float64) Value { return Value{Num: n} }

type unitInfo struct {
	cat    Category
	symbol string
	ratio  float64 // to the category base; 0 for temperature and pseudo-units
}

var unitTable = map[UnitKind]unitInfo{
	Millimeter:   {CatLength, "mm", 0.001},
	Centimeter:   {CatLength, "cm", 0.01},
	Meter:        {CatLength, "m", 1},
	Kilometer:    {CatLength, "km", 1000},
	Inch:         {CatLength, "in", 0.0254},
	Foot:         {CatLength, "ft", 0.3048},
	Yard:         {CatLength, "yd", 0.9144},
	Mile:         {CatLength, "mi", 1609.344},
	NauticalMile: {CatLength, "nmi", 1852},

	Milligram: {CatWeight, "mg", 0.001},
	Gram:      {CatWeight, "g", 1},
	Kilogram:  {CatWeight, "kg", 1000},
	Tonne:     {CatWeight, "t", 1e6},
	Ounce:     {CatWeight, "oz", 28.349523125},
	Pound:     {CatWeight, "lb", 453.59237},
	Stone:     {CatWeight, "st", 6350.29318},

	Celsius:    {CatTemperature, "°C", 0},
	Fahrenheit: {CatTemperature, "°F", 0},
	Kelvin:     {CatTemperature, "K", 0},

	SquareMeter:     {CatArea, "m2", 1},
	SquareKilometer: {CatArea, "km2", 1e6},
	SquareFoot:      {CatArea, "ft2", 0.09290304},
	SquareInch:      {CatArea, "in2", 0.00064516},
	Acre:            {CatArea, "acre", 4046.8564224},
	Hectare:         {CatArea, "ha", 10000},

	Milliliter: {CatVolume, "ml", 1e-6},
	Liter:      {CatVolume, "l", 1e-3},
	CubicMeter: {CatVolume, "m3", 1},
	Teaspoon:   {CatVolume, "tsp", 4.92892159375e-6},
	Tablespoon: {CatVolume, "tbsp", 1.478676478125e-5},
	FluidOunce: {CatVolume, "floz", 2.95735295625e-5},
	Cup:        {CatVolume, "cup", 2.365882365e-4},
	Pint:       {CatVolume, "pint", 4.73176473e-4},
	Quart:      {CatVolume, "quart", 9.46352946e-4},
	Gallon:     {CatVolume, "gal", 3.785411784e-3},

	Millisecond: {CatTime, "ms", 0.001},
	Second:      {CatTime, "s", 1},
	Minute:      {CatTime, "min", 60},
	Hour:        {CatTime, "h", 3600},
	Day:         {CatTime, "day", 86400},
	Week:        {CatTime, "week", 604800},
	Month:       {CatTime, "month", 2629800}, // 1/12 of a Julian year
	Year:        {CatTime, "year", 31557600},

	Bit:      {CatData, "bit", 1},
	Byte:     {CatData, "B", 8},
	Kilobyte: {CatData, "kB", 8e3},
	Megabyte: {CatData, "MB", 8e6},
	Gigabyte: {CatData, "GB", 8e9},
	Terabyte: {CatData, "TB", 8e12},
	Petabyte: {CatData, "PB", 8e15},
	Kibibyte: {CatData, "KiB", 8192},
	Mebibyte: {CatData, "MiB", 8388608},
	Gibibyte: {CatData, "GiB", 8589934592},
	Tebibyte: {CatData, "TiB", 8796093022208},

	Radian:  {CatAngle, "rad", 1},
	Degree:  {CatAngle, "°", 0.017453292519943295},
	Gradian: {CatAngle, "grad", 0.015707963267948967},
	Turn:    {CatAngle, "turn", 6.283185307179586},

	MeterPerSecond:   {CatSpeed, "m/s", 1},
	KilometerPerHour: {CatSpeed, "km/h", 0.2777777777777778},
	MilePerHour:      {CatSpeed, "mph", 0.44704},
	Knot:             {CatSpeed, "kn", 0.5144444444444445},
	FootPerSecond:    {CatSpeed, "ft/s", 0.3048},

	Pascal:            {CatPressure, "Pa", 1},
	Kilopascal:        {CatPressure, "kPa", 1000},
	Bar:               {CatPressure, "bar", 1e5},
	Atmosphere:        {CatPressure, "atm", 101325},
	PSI:               {CatPressure, "psi", 6894.757293168},
	MillimeterMercury: {CatPressure, "mmHg", 133.322387415},

	Joule:        {CatEnergy, "J", 1},
	Kilojoule:    {CatEnergy, "kJ", 1000},
	Calorie:      {CatEnergy, "cal", 4.184},
	Kilocalorie:  {CatEnergy, "kcal", 4184},
	WattHour:     {CatEnergy, "Wh", 3600},
	KilowattHour: {CatEnergy, "kWh", 3.6e6},
	BTU:          {CatEnergy, "BTU", 1055.05585262},

	Pixel: {CatPixel, "px", 1},
	Em:    {CatPixel, "em", 16},
	Rem:   {CatPixel, "rem", 16},
	Point: {CatPixel, "pt", 16.0 / 12.0},

	CurrencyKind: {CatCurrency, "", 0},

	Percent:         {CatNone, "%", 0},
	Hex:             {CatNone, "hex", 0},
	Binary:          {CatNone, "bin", 0},
	Octal:           {CatNone, "oct", 0},
	Scientific:      {CatNone, "sci", 0},
	DateKind:        {CatNone, "date", 0},
	ElapsedDuration: {CatNone, "elapsed", 0},
}

// Category returns the conversion category of the unit, CatNone for
// display-only pseudo-units and for the zero Unit.
func (u Unit) Category() Category {
	if info, ok := unitTable[u.Kind]; ok {
		return info.cat
	}
	return CatNone
}

// Convertible reports whether the unit takes part in conversion arithmetic.
func (u Unit) Convertible() bool { return u.Category() != CatNone }

// Symbol returns the display symbol ("km", "°C", "USD", ...).
func (u Unit) Symbol() string {
	if u.Kind == CurrencyKind {
		return u.Code
	}
	return unitTable[u.Kind].symbol
}

func (u Unit) String() string {
	if u.Kind == UnitNone {
		return "<none>"
	}
	return u.Symbol()
}

// ConversionError reports an attempt to convert across categories.
type ConversionError struct {
	From, To Unit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// Convert converts v from one unit to another. Both units must share a
// category; currency conversion consults the supplied RateTable (nil means
// the static fallback).
func Convert(v float64, from, to Unit, rates *RateTable) (float64, error) {
	if from == to {
		return v, nil
	}
	cf, ct := from.Category(), to.Category()
	if cf != ct || cf == CatNone {
		return 0, &ConversionError{From: from, To: to}
	}
	switch cf {
	case CatTemperature:
		return convertTemperature(v, from.Kind, to.Kind), nil
	case CatCurrency:
		if rates == nil {
			rates = FallbackRates()
		}
		out, ok := rates.Convert(v, from.Code, to.Code)
		if !ok {
			return 0, &ConversionError{From: from, To: to}
		}
		return out, nil
	}
	return v * unitTable[from.Kind].ratio / unitTable[to.Kind].ratio, nil
}

// convertTemperature goes through a Celsius pivot. Kinds other than the
// three temperature scales never reach here.
func convertTemperature(v float64, from, to UnitKind) float64 {
	var c float64
	switch from {
	case Celsius:
		c = v
	case Fahrenheit:
		c = (v - 32) * 5 / 9
	case Kelvin:
		c = v - 273.15
	}
	switch to {
	case Celsius:
		return c
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	}
	return c
}

// unitSymbols maps short written symbols to kinds. Lookups are done on the
// lower-cased word, so the keys here are lower-case; keywords.go layers the
// long, localizable names on top of this table.
var unitSymbols = map[string]UnitKind{
	"mm": Millimeter, "cm": Centimeter, "m": Meter, "km": Kilometer,
	"in2": SquareInch, "yd": Yard, "mi": Mile, "nmi": NauticalMile,
	"ft": Foot,
	"mg": Milligram, "g": Gram, "kg": Kilogram, "t": Tonne,
	"oz": Ounce, "lb": Pound, "lbs": Pound, "st": Stone,
	"m2": SquareMeter, "km2": SquareKilometer, "ft2": SquareFoot,
	"ha": Hectare, "acre": Acre,
	"ml": Milliliter, "l": Liter, "m3": CubicMeter,
	"tsp": Teaspoon, "tbsp": Tablespoon, "floz": FluidOunce,
	"cup": Cup, "pint": Pint, "quart": Quart, "gal": Gallon,
	"ms": Millisecond, "s": Second, "sec": Second, "min": Minute,
	"h": Hour, "hr": Hour, "day": Day, "week": Week, "month": Month,
	"year": Year, "yr": Year,
	"bit": Bit, "bits": Bit, "byte": Byte, "bytes": Byte, "b": Byte,
	"kb": Kilobyte, "mb": Megabyte, "gb": Gigabyte, "tb": Terabyte,
	"pb": Petabyte, "kib": Kibibyte, "mib": Mebibyte, "gib": Gibibyte,
	"tib": Tebibyte,
	"rad": Radian, "deg": Degree, "grad": Gradian, "turn": Turn,
	"m/s": MeterPerSecond, "km/h": KilometerPerHour, "kmh": KilometerPerHour,
	"mph": MilePerHour, "kn": Knot, "knot": Knot, "knots": Knot,
	"ft/s": FootPerSecond,
	"pa":   Pascal, "kpa": Kilopascal, "bar": Bar, "atm": Atmosphere,
	"psi": PSI, "mmhg": MillimeterMercury, "torr": MillimeterMercury,
	"j": Joule, "kj": Kilojoule, "cal": Calorie, "kcal": Kilocalorie,
	"wh": WattHour, "kwh": KilowattHour, "btu": BTU,
	"px": Pixel, "em": Em, "rem": Rem, "pt": Point,
	"celsius": Celsius, "fahrenheit": Fahrenheit, "kelvin": Kelvin,
}
