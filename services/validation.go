package services

import "regexp"

// Validation regex patterns
var (
	jobIDPattern    = regexp.MustCompile(`^[0-9]{6}$`)
	namePattern     = regexp.MustCompile(`^[A-Za-z ]+$`)
	locationPattern = regexp.MustCompile(`^[A-Za-z0-9 ,.\-]+$`)
)

// ValidateJobID validates a job ID (exactly 6 decimal digits).
func ValidateJobID(jobID string) bool {
	return jobIDPattern.MatchString(jobID)
}

// ValidateName validates a client or designer name (letters and spaces, non-empty).
func ValidateName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateInstallLocation validates an install location (letters, digits,
// spaces, comma, period, hyphen; non-empty).
func ValidateInstallLocation(loc string) bool {
	return locationPattern.MatchString(loc)
}

// FieldErrors evaluates every field of the snapshot independently of the
// touched set and returns field key -> error message for each invalid one.
// Door/drawer fields are only checked while the corresponding toggle is on,
// and series/variant only while the style and series call for them.
func FieldErrors(s FormState) map[string]string {
	errors := make(map[string]string)

	if !ValidateJobID(s.JobID) {
		errors[FieldJobID] = "Enter a 6-digit Job ID"
	}
	if !ValidateName(s.ClientName) {
		errors[FieldClientName] = "Only letters allowed"
	}
	if !ValidateName(s.DesignerName) {
		errors[FieldDesignerName] = "Only letters allowed"
	}
	if !ValidateInstallLocation(s.InstallLocation) {
		errors[FieldInstallLocation] = "Invalid characters"
	}

	if !ValidCollection(s.Collection) {
		errors[FieldCollection] = "Required"
	}
	if !ValidColor(s.Collection, s.Color) {
		errors[FieldColor] = "Required"
	}

	decoErrors(s.Door, errors, FieldDoorQuantity, FieldDoorDecoStyle, FieldDoorSeries, FieldDoorVariant)
	decoErrors(s.Drawer, errors, FieldDrawerQuantity, FieldDrawerDecoStyle, FieldDrawerSeries, FieldDrawerVariant)

	return errors
}

func decoErrors(d DecoSelection, errors map[string]string, qtyKey, styleKey, seriesKey, variantKey string) {
	if !d.Enabled {
		return
	}
	if d.Quantity == "" {
		errors[qtyKey] = "Required"
	}
	if !ValidDecoStyle(d.Style) {
		errors[styleKey] = "Required"
		return
	}
	if d.Style == "Slab" {
		return
	}
	if !ValidSeries(d.Style, d.Series) {
		errors[seriesKey] = "Required"
		return
	}
	// Series without a variant list (e.g. Avanti Shaker 90) need no variant.
	if len(VariantOptions[d.Series]) == 0 {
		return
	}
	if !ValidVariant(d.Series, d.Variant) {
		errors[variantKey] = "Required"
	}
}

// SectionStatus holds the derived completeness of the four form sections.
type SectionStatus struct {
	ClientDetails bool
	Collection    bool
	Door          bool
	Drawer        bool
}

// Sections derives per-section completeness from the snapshot.
func Sections(s FormState) SectionStatus {
	errors := FieldErrors(s)
	missing := func(keys ...string) bool {
		for _, k := range keys {
			if _, bad := errors[k]; bad {
				return true
			}
		}
		return false
	}

	return SectionStatus{
		ClientDetails: !missing(FieldJobID, FieldClientName, FieldDesignerName, FieldInstallLocation),
		Collection:    !missing(FieldCollection, FieldColor),
		Door:          !missing(FieldDoorQuantity, FieldDoorDecoStyle, FieldDoorSeries, FieldDoorVariant),
		Drawer:        !missing(FieldDrawerQuantity, FieldDrawerDecoStyle, FieldDrawerSeries, FieldDrawerVariant),
	}
}

// Section-incompleteness messages, reported one at a time by the submit gate.
const (
	MsgClientDetailsIncomplete = "Please complete all Client Details correctly."
	MsgCollectionIncomplete    = "Please complete all Collection Fields."
	MsgDoorIncomplete          = "Please complete Door Fields or turn off Door."
	MsgDrawerIncomplete        = "Please complete Drawer Fields or turn off Drawer."
)

// FirstIncompleteSection evaluates sections in fixed order 1..4 and returns
// the blocking message for the earliest incomplete one. ok is true when the
// whole form passes and submission may proceed.
func FirstIncompleteSection(s FormState) (msg string, ok bool) {
	sections := Sections(s)
	switch {
	case !sections.ClientDetails:
		return MsgClientDetailsIncomplete, false
	case !sections.Collection:
		return MsgCollectionIncomplete, false
	case !sections.Door:
		return MsgDoorIncomplete, false
	case !sections.Drawer:
		return MsgDrawerIncomplete, false
	}
	return "", true
}

// Visibility is the derived enablement map the form template renders from.
// Downstream sections are progressively locked until upstream sections
// complete; series/variant pickers appear only when the parent selection
// resolves to a non-empty option list.
type Visibility struct {
	CollectionUnlocked bool
	DoorDrawerUnlocked bool

	ColorEnabled bool
	ColorChoices []string

	DoorSeriesShown    bool
	DoorSeriesChoices  []string
	DoorVariantShown   bool
	DoorVariantChoices []string

	DrawerSeriesShown    bool
	DrawerSeriesChoices  []string
	DrawerVariantShown   bool
	DrawerVariantChoices []string
}

// DeriveVisibility computes the visibility cascade for the snapshot.
func DeriveVisibility(s FormState) Visibility {
	sections := Sections(s)

	v := Visibility{
		CollectionUnlocked: sections.ClientDetails,
		DoorDrawerUnlocked: sections.ClientDetails && sections.Collection,
		ColorEnabled:       s.Collection != "",
		ColorChoices:       ColorOptions[s.Collection],
	}

	v.DoorSeriesShown, v.DoorSeriesChoices, v.DoorVariantShown, v.DoorVariantChoices = decoVisibility(s.Door)
	v.DrawerSeriesShown, v.DrawerSeriesChoices, v.DrawerVariantShown, v.DrawerVariantChoices = decoVisibility(s.Drawer)

	return v
}

func decoVisibility(d DecoSelection) (seriesShown bool, seriesChoices []string, variantShown bool, variantChoices []string) {
	if !d.Enabled || d.Style == "" || d.Style == "Slab" {
		return false, nil, false, nil
	}
	seriesChoices = SeriesOptions[d.Style]
	seriesShown = len(seriesChoices) > 0
	if d.Series != "" {
		variantChoices = VariantOptions[d.Series]
		variantShown = len(variantChoices) > 0
	}
	return seriesShown, seriesChoices, variantShown, variantChoices
}
