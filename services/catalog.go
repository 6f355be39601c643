package services

// CollectionOptions is the list of product collections offered on the intake form.
var CollectionOptions = []string{
	"Everyday",
	"Classic",
	"Brio",
}

// ColorOptions maps each collection to its available colors.
var ColorOptions = map[string][]string{
	"Everyday": {"White", "Antique White", "Grey"},
	"Classic":  {"White", "Antique White"},
	"Brio":     {"Winter Fun", "Sunset Cruise"},
}

// DecoStyleOptions is the list of decorative treatments for doors and drawers.
// Slab has no series or variant refinement.
var DecoStyleOptions = []string{
	"Deco",
	"Avanti",
	"Slab",
}

// SeriesOptions maps a deco style to its series list. Styles without an
// entry (Slab) have no series picker.
var SeriesOptions = map[string][]string{
	"Deco":   {"Deco 00", "Deco 01", "Deco 70"},
	"Avanti": {"Avanti Shaker 90"},
}

// VariantOptions maps a series to its variant list. Series without an entry
// have no variant picker.
var VariantOptions = map[string][]string{
	"Deco 00": {"Variant 100"},
	"Deco 01": {"Variant 101", "Variant 201"},
	"Deco 70": {"Variant 170", "Variant 270"},
}

// ValidCollection reports whether name is one of the offered collections.
func ValidCollection(name string) bool {
	return contains(CollectionOptions, name)
}

// ValidColor reports whether color belongs to the given collection.
func ValidColor(collection, color string) bool {
	return contains(ColorOptions[collection], color)
}

// ValidDecoStyle reports whether style is one of the deco treatments.
func ValidDecoStyle(style string) bool {
	return contains(DecoStyleOptions, style)
}

// ValidSeries reports whether series belongs to the given deco style.
func ValidSeries(style, series string) bool {
	return contains(SeriesOptions[style], series)
}

// ValidVariant reports whether variant belongs to the given series.
func ValidVariant(series, variant string) bool {
	return contains(VariantOptions[series], variant)
}

// SoleSeries returns the single series for a style, if the style maps to
// exactly one. Used to auto-select instead of forcing a redundant choice.
func SoleSeries(style string) (string, bool) {
	if opts := SeriesOptions[style]; len(opts) == 1 {
		return opts[0], true
	}
	return "", false
}

// SoleVariant returns the single variant for a series, if the series maps to
// exactly one.
func SoleVariant(series string) (string, bool) {
	if opts := VariantOptions[series]; len(opts) == 1 {
		return opts[0], true
	}
	return "", false
}

func contains(opts []string, v string) bool {
	if v == "" {
		return false
	}
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
