package sheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func TestParseProducts(t *testing.T) {
	buf := workbook(t, [][]any{
		{"title", "desc", "price", "mrp", "category"},
		{"Green Tea", "loose leaf", 4.5, 6, "drinks"},
		{"Mug", "", "abc", 3, "kitchen"},
		{"", "no title", 1, 1, "x"},
		{" Spoon ", "steel", "2", "", "kitchen"},
	})

	rows, err := ParseProducts(buf)
	if err != nil {
		t.Fatalf("ParseProducts: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %+v", len(rows), rows)
	}

	first := rows[0]
	if first.Err != nil || first.Line != 2 {
		t.Fatalf("unexpected first row: %+v", first)
	}
	p := first.Product
	if p.Title != "Green Tea" || p.Desc != "loose leaf" || p.Price != 4.5 || p.MRP != 6 || p.Category != "drinks" {
		t.Errorf("unexpected product: %+v", p)
	}

	if rows[1].Err == nil || rows[1].Line != 3 {
		t.Errorf("expected price error on line 3, got %+v", rows[1])
	}
	if rows[2].Err == nil {
		t.Errorf("expected missing title error, got %+v", rows[2])
	}
	if rows[3].Err != nil || rows[3].Product.Title != "Spoon" || rows[3].Product.Price != 2 || rows[3].Product.MRP != 0 {
		t.Errorf("unexpected last row: %+v", rows[3])
	}
}

func TestParseProducts_NotAWorkbook(t *testing.T) {
	if _, err := ParseProducts(strings.NewReader("title,price\nTea,1\n")); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "", want: 0},
		{in: "2.5", want: 2.5},
		{in: "abc", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "-Inf", wantErr: true},
		{in: "+Infinity", wantErr: true},
	}
	for _, tt := range tests {
		got, err := number(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("number(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("number(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseProducts_NonFinitePrice(t *testing.T) {
	buf := workbook(t, [][]any{
		{"title", "desc", "price", "mrp", "category"},
		{"Tea", "", "NaN", 1, "drinks"},
		{"Mug", "", 1, "-Inf", "kitchen"},
	})

	rows, err := ParseProducts(buf)
	if err != nil {
		t.Fatalf("ParseProducts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Err == nil {
			t.Errorf("line %d: expected non-finite error, got %+v", r.Line, r.Product)
		}
	}
}
