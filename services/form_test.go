package services

import (
	"net/url"
	"testing"
)

func TestDecodeFormState(t *testing.T) {
	values := url.Values{}
	values.Set("job_id", " 100200 ")
	values.Set("client_name", "Jane Doe")
	values.Set("designer_name", "Sam Lee")
	values.Set("install_location", "Unit 4, Block B")
	values.Set("collection", "Classic")
	values.Set("color", "White")
	values.Set("door_enabled", "on")
	values.Set("door_quantity", "4")
	values.Set("door_deco_style", "Slab")
	values.Set("touched", "job_id,color")

	state := DecodeFormState(values)

	if state.JobID != "100200" {
		t.Errorf("expected trimmed job ID, got %q", state.JobID)
	}
	if !state.Door.Enabled {
		t.Error("expected door enabled")
	}
	if state.Drawer.Enabled {
		t.Error("expected drawer disabled")
	}
	if !state.Touched["job_id"] || !state.Touched["color"] {
		t.Errorf("expected touched set decoded, got %v", state.Touched)
	}
	if state.Touched["client_name"] {
		t.Error("client_name should not be touched")
	}
}

func TestTouchedValueRoundTrip(t *testing.T) {
	state := NewFormState()
	state.Touch(FieldColor)
	state.Touch(FieldJobID)
	state.Touch("") // no-op

	if got := state.TouchedValue(); got != "color,job_id" {
		t.Errorf("TouchedValue() = %q, want %q", got, "color,job_id")
	}

	values := url.Values{}
	values.Set("touched", state.TouchedValue())
	decoded := DecodeFormState(values)
	if !decoded.Touched[FieldColor] || !decoded.Touched[FieldJobID] {
		t.Errorf("round-trip lost touched fields: %v", decoded.Touched)
	}
}

func TestTouchAll(t *testing.T) {
	state := NewFormState()
	state.TouchAll()
	for _, key := range AllFieldKeys {
		if !state.Touched[key] {
			t.Errorf("expected %s touched after TouchAll", key)
		}
	}
}

func TestNormalize_ClearsColorOutsideCollection(t *testing.T) {
	state := NewFormState()
	state.Collection = "Brio"
	state.Color = "White" // belongs to Everyday/Classic, not Brio

	state.Normalize()

	if state.Color != "" {
		t.Errorf("expected color cleared, got %q", state.Color)
	}
}

func TestNormalize_KeepsColorSharedAcrossCollections(t *testing.T) {
	state := NewFormState()
	state.Collection = "Classic"
	state.Color = "White"

	state.Normalize()

	if state.Color != "White" {
		t.Errorf("expected color kept, got %q", state.Color)
	}
}

func TestNormalize_SlabClearsSeriesAndVariant(t *testing.T) {
	state := NewFormState()
	state.Door = DecoSelection{
		Enabled: true,
		Style:   "Slab",
		Series:  "Deco 01",
		Variant: "Variant 101",
	}

	state.Normalize()

	if state.Door.Series != "" || state.Door.Variant != "" {
		t.Errorf("expected series/variant cleared for Slab, got %q / %q",
			state.Door.Series, state.Door.Variant)
	}
}

func TestNormalize_UnsetStyleClearsSeriesAndVariant(t *testing.T) {
	state := NewFormState()
	state.Drawer = DecoSelection{Enabled: true, Series: "Deco 01", Variant: "Variant 101"}

	state.Normalize()

	if state.Drawer.Series != "" || state.Drawer.Variant != "" {
		t.Errorf("expected series/variant cleared for unset style, got %q / %q",
			state.Drawer.Series, state.Drawer.Variant)
	}
}

func TestNormalize_ClearsSeriesOutsideStyle(t *testing.T) {
	state := NewFormState()
	state.Door = DecoSelection{
		Enabled: true,
		Style:   "Deco",
		Series:  "Avanti Shaker 90", // belongs to Avanti
		Variant: "Variant 101",
	}

	state.Normalize()

	if state.Door.Series != "" {
		t.Errorf("expected foreign series cleared, got %q", state.Door.Series)
	}
	if state.Door.Variant != "" {
		t.Errorf("expected variant cleared with its series, got %q", state.Door.Variant)
	}
}

func TestNormalize_AutoSelectsSingletonSeries(t *testing.T) {
	state := NewFormState()
	state.Door = DecoSelection{Enabled: true, Style: "Avanti"}

	state.Normalize()

	if state.Door.Series != "Avanti Shaker 90" {
		t.Errorf("expected singleton series auto-selected, got %q", state.Door.Series)
	}
}

func TestNormalize_AutoSelectsSingletonVariant(t *testing.T) {
	state := NewFormState()
	state.Drawer = DecoSelection{Enabled: true, Style: "Deco", Series: "Deco 00"}

	state.Normalize()

	if state.Drawer.Variant != "Variant 100" {
		t.Errorf("expected singleton variant auto-selected, got %q", state.Drawer.Variant)
	}
}

func TestNormalize_NoAutoSelectForMultipleOptions(t *testing.T) {
	state := NewFormState()
	state.Door = DecoSelection{Enabled: true, Style: "Deco"}

	state.Normalize()

	if state.Door.Series != "" {
		t.Errorf("expected no auto-select among three Deco series, got %q", state.Door.Series)
	}
}
