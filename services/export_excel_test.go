package services

import "testing"

func TestGenerateSubmissionsExcel(t *testing.T) {
	rows := []SubmissionRow{
		{
			JobID:           "100200",
			ClientName:      "Jane Doe",
			DesignerName:    "Sam Lee",
			InstallLocation: "Unit 4, Block B",
			Collection:      "Classic",
			Color:           "White",
			Door:            "No",
			Drawer:          "2 x Slab",
			Status:          "saved",
			Submitted:       "2026-03-05",
		},
	}

	result, err := GenerateSubmissionsExcel(rows)
	if err != nil {
		t.Fatalf("GenerateSubmissionsExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateSubmissionsExcel() returned empty bytes")
	}
	// XLSX files are zip archives and start with PK
	if string(result[:2]) != "PK" {
		t.Errorf("result does not look like an xlsx file, got %q", string(result[:2]))
	}
}

func TestGenerateSubmissionsExcel_Empty(t *testing.T) {
	result, err := GenerateSubmissionsExcel(nil)
	if err != nil {
		t.Fatalf("GenerateSubmissionsExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateSubmissionsExcel() returned empty bytes")
	}
}

func TestDecoSummary(t *testing.T) {
	tests := []struct {
		name string
		in   DecoSelection
		want string
	}{
		{"disabled", DecoSelection{}, "No"},
		{"slab", DecoSelection{Enabled: true, Quantity: "2", Style: "Slab"}, "2 x Slab"},
		{
			"full selection",
			DecoSelection{Enabled: true, Quantity: "4", Style: "Deco", Series: "Deco 01", Variant: "Variant 101"},
			"4 x Deco / Deco 01 / Variant 101",
		},
		{
			"series without variant",
			DecoSelection{Enabled: true, Quantity: "1", Style: "Avanti", Series: "Avanti Shaker 90"},
			"1 x Avanti / Avanti Shaker 90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecoSummary(tt.in); got != tt.want {
				t.Errorf("DecoSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
