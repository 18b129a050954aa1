// Package sheet reads bulk product uploads from xlsx workbooks.
package sheet

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/service"
)

// Column order of the product sheet. The first row is a header.
const (
	colTitle = iota
	colDesc
	colPrice
	colMRP
	colCategory
)

// ParseProducts reads the first sheet of the workbook. Rows that cannot be
// parsed come back with Err set; blank rows are dropped. Line numbers are
// 1-based spreadsheet rows.
func ParseProducts(r io.Reader) ([]service.ImportRow, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: not an xlsx workbook", domain.ErrInvalidInput)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrInvalidInput)
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	out := make([]service.ImportRow, 0, len(rows))
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		out = append(out, parseRow(i+1, row))
	}
	return out, nil
}

func parseRow(line int, row []string) service.ImportRow {
	res := service.ImportRow{Line: line}

	title := cell(row, colTitle)
	if title == "" {
		res.Err = fmt.Errorf("title is required")
		return res
	}
	price, err := number(cell(row, colPrice))
	if err != nil {
		res.Err = fmt.Errorf("price: %v", err)
		return res
	}
	mrp, err := number(cell(row, colMRP))
	if err != nil {
		res.Err = fmt.Errorf("mrp: %v", err)
		return res
	}

	res.Product = domain.Product{
		Title:    title,
		Desc:     cell(row, colDesc),
		Price:    price,
		MRP:      mrp,
		Category: cell(row, colCategory),
	}
	return res
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// number parses a numeric cell. An empty cell is zero; NaN and infinities
// are rejected.
func number(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
