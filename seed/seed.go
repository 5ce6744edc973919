// seed/seed.go
package seed

import (
	"context"

	"go.uber.org/zap"
)

// HeaderWriter is the part of the sheet writer needed to seed the header row.
type HeaderWriter interface {
	HeaderRow(ctx context.Context) ([]string, error)
	WriteHeader(ctx context.Context) error
}

// SeedSheetHeader writes the column labels into row 1 when the sheet has none.
func SeedSheetHeader(ctx context.Context, w HeaderWriter, logger *zap.Logger) error {
	existing, err := w.HeaderRow(ctx)
	if err != nil {
		return err
	}
	if hasContent(existing) {
		logger.Info("Sheet header already exists. Skipping seeding.")
		return nil
	}

	if err := w.WriteHeader(ctx); err != nil {
		return err
	}

	logger.Info("Sheet header seeded successfully.")
	return nil
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}
