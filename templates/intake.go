package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"contractintake/services"
)

// refreshAttrs are shared by every control that triggers a server-side
// recompute of validity, visibility and cascade state.
const refreshAttrs = `hx-post="/intake/refresh" hx-target="#intake" hx-swap="outerHTML" hx-include="#intake-form"`

// IntakePage renders the full intake screen.
func IntakePage(data IntakeData, header HeaderData) templ.Component {
	return Layout("Contract Intake", header, IntakeContent(data))
}

// IntakeContent renders the form plus the contract preview area. It is the
// swap target for refresh and submit requests.
func IntakeContent(data IntakeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="intake">`); err != nil {
			return err
		}
		if err := intakeForm(w, data); err != nil {
			return err
		}
		if err := ContractPreview(data.ContractHandle).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func intakeForm(w io.Writer, data IntakeData) error {
	if _, err := fmt.Fprintf(w,
		`<form id="intake-form" hx-post="/intake/submit" hx-target="#intake" hx-swap="outerHTML" hx-disabled-elt="#intake-submit">`+
			`<input type="hidden" name="touched" value="%s"/>`,
		templ.EscapeString(data.State.TouchedValue())); err != nil {
		return err
	}

	if err := clientDetailsSection(w, data); err != nil {
		return err
	}
	if err := collectionSection(w, data); err != nil {
		return err
	}
	if err := doorDrawerSection(w, data); err != nil {
		return err
	}

	if _, err := io.WriteString(w,
		`<div class="actions"><button type="submit" id="intake-submit" class="btn btn-primary">Generate Contract</button></div>`+
			`</form>`); err != nil {
		return err
	}
	return nil
}

func clientDetailsSection(w io.Writer, data IntakeData) error {
	if _, err := io.WriteString(w, `<section class="card"><h3>Client Details</h3><div class="grid-2">`); err != nil {
		return err
	}

	fields := []struct {
		key, label, value string
	}{
		{services.FieldJobID, "Job ID", data.State.JobID},
		{services.FieldClientName, "Client Name", data.State.ClientName},
		{services.FieldDesignerName, "Designer Name", data.State.DesignerName},
		{services.FieldInstallLocation, "Install Location", data.State.InstallLocation},
	}
	for _, f := range fields {
		if err := textField(w, data, f.key, f.label, f.value); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</div></section>`)
	return err
}

func collectionSection(w io.Writer, data IntakeData) error {
	if err := openLockedSection(w, "Collection", !data.Visibility.CollectionUnlocked,
		"Complete Client Details to continue."); err != nil {
		return err
	}

	if err := selectField(w, data, services.FieldCollection, "Collection List",
		data.State.Collection, services.CollectionOptions, false); err != nil {
		return err
	}
	if err := selectField(w, data, services.FieldColor, "Collection Color",
		data.State.Color, data.Visibility.ColorChoices, !data.Visibility.ColorEnabled); err != nil {
		return err
	}

	return closeLockedSection(w)
}

func doorDrawerSection(w io.Writer, data IntakeData) error {
	if err := openLockedSection(w, "Door & Drawer", !data.Visibility.DoorDrawerUnlocked,
		"Complete Client & Collection Fields to continue."); err != nil {
		return err
	}

	door := decoPanel{
		legend:         "Door",
		enabledName:    "door_enabled",
		quantityKey:    services.FieldDoorQuantity,
		styleKey:       services.FieldDoorDecoStyle,
		seriesKey:      services.FieldDoorSeries,
		variantKey:     services.FieldDoorVariant,
		selection:      data.State.Door,
		seriesShown:    data.Visibility.DoorSeriesShown,
		seriesChoices:  data.Visibility.DoorSeriesChoices,
		variantShown:   data.Visibility.DoorVariantShown,
		variantChoices: data.Visibility.DoorVariantChoices,
	}
	if err := door.render(w, data); err != nil {
		return err
	}

	drawer := decoPanel{
		legend:         "Drawer",
		enabledName:    "drawer_enabled",
		quantityKey:    services.FieldDrawerQuantity,
		styleKey:       services.FieldDrawerDecoStyle,
		seriesKey:      services.FieldDrawerSeries,
		variantKey:     services.FieldDrawerVariant,
		selection:      data.State.Drawer,
		seriesShown:    data.Visibility.DrawerSeriesShown,
		seriesChoices:  data.Visibility.DrawerSeriesChoices,
		variantShown:   data.Visibility.DrawerVariantShown,
		variantChoices: data.Visibility.DrawerVariantChoices,
	}
	if err := drawer.render(w, data); err != nil {
		return err
	}

	return closeLockedSection(w)
}

// decoPanel renders the door or drawer half of section 3/4: toggle,
// quantity, style, and the conditionally disclosed series/variant pickers.
type decoPanel struct {
	legend         string
	enabledName    string
	quantityKey    string
	styleKey       string
	seriesKey      string
	variantKey     string
	selection      services.DecoSelection
	seriesShown    bool
	seriesChoices  []string
	variantShown   bool
	variantChoices []string
}

func (p decoPanel) render(w io.Writer, data IntakeData) error {
	checked := ""
	if p.selection.Enabled {
		checked = " checked"
	}
	if _, err := fmt.Fprintf(w,
		`<fieldset class="deco-panel"><legend>%s</legend>`+
			`<label class="toggle"><input type="checkbox" name="%s" hx-trigger="change" %s%s/> %s requested</label>`,
		templ.EscapeString(p.legend), p.enabledName, refreshAttrs, checked,
		templ.EscapeString(p.legend)); err != nil {
		return err
	}

	if p.selection.Enabled {
		if err := numberField(w, data, p.quantityKey, p.legend+" Quantity", p.selection.Quantity); err != nil {
			return err
		}
		if err := selectField(w, data, p.styleKey, p.legend+" Deco Style",
			p.selection.Style, services.DecoStyleOptions, false); err != nil {
			return err
		}
		if p.seriesShown {
			if err := selectField(w, data, p.seriesKey, p.legend+" Deco Series",
				p.selection.Series, p.seriesChoices, false); err != nil {
				return err
			}
		}
		if p.variantShown {
			if err := selectField(w, data, p.variantKey, p.legend+" Deco Variant",
				p.selection.Variant, p.variantChoices, false); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, `</fieldset>`)
	return err
}

// openLockedSection starts a card that renders an overlay while locked, so
// downstream sections stay visible but inert until upstream ones complete.
func openLockedSection(w io.Writer, title string, locked bool, lockMessage string) error {
	class := "card"
	if locked {
		class = "card locked"
	}
	if _, err := fmt.Fprintf(w, `<section class="%s">`, class); err != nil {
		return err
	}
	if locked {
		if _, err := fmt.Fprintf(w, `<div class="overlay">%s</div>`, templ.EscapeString(lockMessage)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, `<h3>%s</h3>`, templ.EscapeString(title))
	return err
}

func closeLockedSection(w io.Writer) error {
	_, err := io.WriteString(w, `</section>`)
	return err
}

func textField(w io.Writer, data IntakeData, key, label, value string) error {
	return inputField(w, data, key, label, value, "text")
}

func numberField(w io.Writer, data IntakeData, key, label, value string) error {
	return inputField(w, data, key, label, value, "number")
}

func inputField(w io.Writer, data IntakeData, key, label, value, inputType string) error {
	if _, err := fmt.Fprintf(w,
		`<div class="field"><label for="%s">%s</label>`+
			`<input type="%s" id="%s" name="%s" value="%s" hx-trigger="blur" %s/>`,
		key, templ.EscapeString(label), inputType, key, key,
		templ.EscapeString(value), refreshAttrs); err != nil {
		return err
	}
	return fieldFooter(w, data, key)
}

func selectField(w io.Writer, data IntakeData, key, label, value string, options []string, disabled bool) error {
	disabledAttr := ""
	if disabled {
		disabledAttr = " disabled"
	}
	if _, err := fmt.Fprintf(w,
		`<div class="field"><label for="%s">%s</label>`+
			`<select id="%s" name="%s" hx-trigger="change" %s%s>`+
			`<option value=""></option>`,
		key, templ.EscapeString(label), key, key, refreshAttrs, disabledAttr); err != nil {
		return err
	}
	for _, opt := range options {
		selected := ""
		if opt == value {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
			templ.EscapeString(opt), selected, templ.EscapeString(opt)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</select>`); err != nil {
		return err
	}
	return fieldFooter(w, data, key)
}

func fieldFooter(w io.Writer, data IntakeData, key string) error {
	if msg := data.FieldError(key); msg != "" {
		if _, err := fmt.Fprintf(w, `<span class="field-error">%s</span>`, templ.EscapeString(msg)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}
