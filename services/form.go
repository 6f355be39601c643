package services

import (
	"net/url"
	"sort"
	"strings"
)

// Form field keys, shared between the templates (input names), the touched
// set and the validation error map.
const (
	FieldJobID           = "job_id"
	FieldClientName      = "client_name"
	FieldDesignerName    = "designer_name"
	FieldInstallLocation = "install_location"
	FieldCollection      = "collection"
	FieldColor           = "color"
	FieldDoorQuantity    = "door_quantity"
	FieldDoorDecoStyle   = "door_deco_style"
	FieldDoorSeries      = "door_series"
	FieldDoorVariant     = "door_variant"
	FieldDrawerQuantity  = "drawer_quantity"
	FieldDrawerDecoStyle = "drawer_deco_style"
	FieldDrawerSeries    = "drawer_series"
	FieldDrawerVariant   = "drawer_variant"
)

// AllFieldKeys lists every validatable field, in form order.
var AllFieldKeys = []string{
	FieldJobID,
	FieldClientName,
	FieldDesignerName,
	FieldInstallLocation,
	FieldCollection,
	FieldColor,
	FieldDoorQuantity,
	FieldDoorDecoStyle,
	FieldDoorSeries,
	FieldDoorVariant,
	FieldDrawerQuantity,
	FieldDrawerDecoStyle,
	FieldDrawerSeries,
	FieldDrawerVariant,
}

// DecoSelection holds the door or drawer half of the form. Quantity is kept
// as the raw input string; validation only requires it to be present.
type DecoSelection struct {
	Enabled  bool
	Quantity string
	Style    string
	Series   string
	Variant  string
}

// FormState is the single aggregate driving the intake screen. It is decoded
// fresh from the posted form on every refresh/submit; nothing server-side
// mutates it between requests.
type FormState struct {
	JobID           string
	ClientName      string
	DesignerName    string
	InstallLocation string
	Collection      string
	Color           string
	Door            DecoSelection
	Drawer          DecoSelection

	// Touched gates error display only; validation never reads it.
	Touched map[string]bool
}

// NewFormState returns an empty form with no touched fields.
func NewFormState() FormState {
	return FormState{Touched: make(map[string]bool)}
}

// DecodeFormState rebuilds a FormState from posted form values.
func DecodeFormState(values url.Values) FormState {
	state := FormState{
		JobID:           strings.TrimSpace(values.Get(FieldJobID)),
		ClientName:      strings.TrimSpace(values.Get(FieldClientName)),
		DesignerName:    strings.TrimSpace(values.Get(FieldDesignerName)),
		InstallLocation: strings.TrimSpace(values.Get(FieldInstallLocation)),
		Collection:      values.Get(FieldCollection),
		Color:           values.Get(FieldColor),
		Door: DecoSelection{
			Enabled:  values.Get("door_enabled") == "on",
			Quantity: strings.TrimSpace(values.Get(FieldDoorQuantity)),
			Style:    values.Get(FieldDoorDecoStyle),
			Series:   values.Get(FieldDoorSeries),
			Variant:  values.Get(FieldDoorVariant),
		},
		Drawer: DecoSelection{
			Enabled:  values.Get("drawer_enabled") == "on",
			Quantity: strings.TrimSpace(values.Get(FieldDrawerQuantity)),
			Style:    values.Get(FieldDrawerDecoStyle),
			Series:   values.Get(FieldDrawerSeries),
			Variant:  values.Get(FieldDrawerVariant),
		},
		Touched: make(map[string]bool),
	}

	for _, key := range strings.Split(values.Get("touched"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			state.Touched[key] = true
		}
	}

	return state
}

// TouchedValue serializes the touched set back into the hidden form field.
func (s FormState) TouchedValue() string {
	keys := make([]string, 0, len(s.Touched))
	for k, v := range s.Touched {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// Touch marks a single field as interacted with.
func (s *FormState) Touch(field string) {
	if field == "" {
		return
	}
	if s.Touched == nil {
		s.Touched = make(map[string]bool)
	}
	s.Touched[field] = true
}

// TouchAll marks every field touched, so all latent errors render. Invoked
// by the submit handler before the section gate runs.
func (s *FormState) TouchAll() {
	if s.Touched == nil {
		s.Touched = make(map[string]bool)
	}
	for _, key := range AllFieldKeys {
		s.Touched[key] = true
	}
}

// Normalize applies the dependent-field invariants as a pure derivation over
// the current snapshot:
//
//   - color is cleared when it no longer belongs to the chosen collection
//   - series/variant are cleared when the style is Slab or unset, or when
//     they fall outside the lookup tables for the current parent selection
//   - a singleton series or variant list is auto-selected
//
// It is re-run after every mutation, so order-dependent patching bugs cannot
// accumulate.
func (s *FormState) Normalize() {
	if s.Color != "" && !ValidColor(s.Collection, s.Color) {
		s.Color = ""
	}
	normalizeDeco(&s.Door)
	normalizeDeco(&s.Drawer)
}

func normalizeDeco(d *DecoSelection) {
	if d.Style == "Slab" || d.Style == "" {
		d.Series = ""
		d.Variant = ""
		return
	}
	if d.Series != "" && !ValidSeries(d.Style, d.Series) {
		d.Series = ""
		d.Variant = ""
	}
	if d.Series == "" {
		if sole, ok := SoleSeries(d.Style); ok {
			d.Series = sole
		}
	}
	if d.Series == "" {
		d.Variant = ""
		return
	}
	if d.Variant != "" && !ValidVariant(d.Series, d.Variant) {
		d.Variant = ""
	}
	if d.Variant == "" {
		if sole, ok := SoleVariant(d.Series); ok {
			d.Variant = sole
		}
	}
}
