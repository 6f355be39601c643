package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateContractPDF renders the contract document for a validated intake
// snapshot using maroto/v2. Layout is fixed: title, date, client details,
// collection, optional door/drawer blocks, terms, signature blocks. Page
// breaks are handled by the engine when the running cursor exceeds the page.
func GenerateContractPDF(data ContractData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addContractTitle(m, data)
	addContractBody(m, data)
	addContractTerms(m, data)
	addContractSignatures(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contract PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addContractTitle adds the centered bold title and the generation date.
func addContractTitle(m core.Maroto, data ContractData) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  12,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addContractBody adds client detail lines, the collection line and the
// door/drawer blocks when present.
func addContractBody(m core.Maroto, data ContractData) {
	bodyStyle := props.Text{
		Size:  12,
		Align: align.Left,
	}

	for _, detail := range data.ClientDetails {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%s: %s", detail.Label, detail.Value), bodyStyle)),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(text.New(data.Collection, bodyStyle)),
		),
	)

	for _, block := range []*DecoLines{data.Door, data.Drawer} {
		if block == nil {
			continue
		}
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(text.New(block.QuantityLine, bodyStyle)),
			),
			row.New(8).Add(
				col.New(12).Add(text.New(block.DecoLine, bodyStyle)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addContractTerms adds the bold heading and the fixed terms paragraph,
// word-wrapped to the content width by the text component.
func addContractTerms(m core.Maroto, data ContractData) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Terms and Conditions", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	for _, clause := range data.Terms {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New(clause, props.Text{
					Size:  11,
					Align: align.Left,
				})),
			),
		)
	}

	m.AddRows(row.New(6))
}

// addContractSignatures adds the two signature blocks, each a label plus a
// horizontal rule.
func addContractSignatures(m core.Maroto) {
	labelStyle := props.Text{
		Size:  12,
		Style: fontstyle.Bold,
		Align: align.Left,
	}

	for _, label := range []string{"Authorized Signature:", "Client Signature:"} {
		m.AddRows(
			row.New(12).Add(
				col.New(4).Add(text.New(label, labelStyle)),
				col.New(8).Add(line.New(props.Line{
					Thickness:     0.4,
					SizePercent:   90,
					OffsetPercent: 80,
				})),
			),
		)
		m.AddRows(row.New(6))
	}
}
