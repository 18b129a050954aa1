package service

import (
	"context"
	"errors"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

// ImportRow is one parsed spreadsheet row. Err is set when the row could
// not be parsed.
type ImportRow struct {
	Line    int
	Product domain.Product
	Err     error
}

type ImportSkip struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Created int          `json:"created"`
	Skipped []ImportSkip `json:"skipped"`
}

// ProductImporter bulk-creates products from parsed spreadsheet rows.
type ProductImporter struct {
	products *RecordService[domain.Product]
}

func NewProductImporter(products *RecordService[domain.Product]) *ProductImporter {
	return &ProductImporter{products: products}
}

// Import creates one product per row through the regular create path, so
// duplicates are skipped rather than overwritten. Store failures other than
// conflicts and bad input abort the import.
func (i *ProductImporter) Import(ctx context.Context, actor *domain.Actor, rows []ImportRow) (*ImportResult, error) {
	if _, err := i.products.spec.Policy(actor, domain.ActionCreate); err != nil {
		return nil, err
	}

	res := &ImportResult{Skipped: []ImportSkip{}}
	for _, row := range rows {
		if row.Err != nil {
			res.Skipped = append(res.Skipped, ImportSkip{Line: row.Line, Reason: row.Err.Error()})
			continue
		}

		p := row.Product
		_, err := i.products.Create(ctx, actor, &p)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrConflict):
			res.Skipped = append(res.Skipped, ImportSkip{Line: row.Line, Reason: "product already exists"})
		case errors.Is(err, domain.ErrInvalidInput):
			res.Skipped = append(res.Skipped, ImportSkip{Line: row.Line, Reason: "invalid product"})
		default:
			return nil, err
		}
	}
	return res, nil
}
