package services

import (
	"fmt"
	"time"
)

// ContractLine is a single "Label: value" row in the contract body.
type ContractLine struct {
	Label string
	Value string
}

// ContractData is everything the PDF layout needs, resolved from a validated
// form snapshot. The generator renders it verbatim; it performs no further
// validation (the section gate is the enforced one).
type ContractData struct {
	Title         string
	Date          string
	ClientDetails []ContractLine
	Collection    string
	Door          *DecoLines
	Drawer        *DecoLines
	Terms         []string
}

// DecoLines is the rendered door or drawer block.
type DecoLines struct {
	QuantityLine string
	DecoLine     string
}

// ContractTerms is the fixed four-clause terms paragraph.
var ContractTerms = []string{
	"1. The client agrees to the terms as outlined in this document.",
	"2. Payment terms are net 30 days from the date of invoice.",
	"3. Both parties agree to resolve any disputes amicably.",
	"4. This contract is governed by the laws of [Your Jurisdiction].",
}

// BuildContractData maps a validated snapshot to the fixed contract layout,
// stamping the current date.
func BuildContractData(s FormState, now time.Time) ContractData {
	data := ContractData{
		Title: "Contract Agreement",
		Date:  FormatContractDate(now),
		ClientDetails: []ContractLine{
			{Label: "Job ID", Value: s.JobID},
			{Label: "Client Name", Value: s.ClientName},
			{Label: "Designer Name", Value: s.DesignerName},
			{Label: "Install Location", Value: s.InstallLocation},
		},
		Collection: fmt.Sprintf("Collection: %s - %s", s.Collection, s.Color),
		Terms:      ContractTerms,
	}

	if s.Door.Enabled {
		data.Door = decoLines("Door", s.Door)
	}
	if s.Drawer.Enabled {
		data.Drawer = decoLines("Drawer", s.Drawer)
	}

	return data
}

func decoLines(label string, d DecoSelection) *DecoLines {
	deco := fmt.Sprintf("%s Deco: %s", label, d.Style)
	if d.Style != "Slab" {
		deco += fmt.Sprintf(" / %s / %s", d.Series, d.Variant)
	}
	return &DecoLines{
		QuantityLine: fmt.Sprintf("%s Quantity: %s", label, d.Quantity),
		DecoLine:     deco,
	}
}
