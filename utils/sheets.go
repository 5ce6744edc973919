package utils

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"referral-intake-server/models"
)

// SheetDateLayout is the dd/mm/yyyy format of the date column.
const SheetDateLayout = "02/01/2006"

const sheetLinkTemplate = "https://docs.google.com/spreadsheets/d/%s/edit?usp=sharing"

// NewSheetsService authenticates with a service-account key.
func NewSheetsService(ctx context.Context, credentials []byte) (*sheets.Service, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentials, sheets.SpreadsheetsScope, sheets.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("parsing google credentials: %w", err)
	}
	return sheets.NewService(ctx, option.WithCredentials(creds))
}

// SheetWriter appends referral rows to the first sheet of one spreadsheet.
type SheetWriter struct {
	values  *sheets.SpreadsheetsValuesService
	sheetID string
	layout  models.SheetLayout
}

func NewSheetWriter(srv *sheets.Service, sheetID string, layout models.SheetLayout) *SheetWriter {
	return &SheetWriter{
		values:  srv.Spreadsheets.Values,
		sheetID: sheetID,
		layout:  layout,
	}
}

func (w *SheetWriter) Layout() models.SheetLayout {
	return w.layout
}

// SheetLink is the shareable link put in notification emails.
func (w *SheetWriter) SheetLink() string {
	return fmt.Sprintf(sheetLinkTemplate, w.sheetID)
}

// AppendRow writes the submission as a new row, columns ordered by the layout.
func (w *SheetWriter) AppendRow(ctx context.Context, r models.ReferralSubmission) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{toCells(w.layout.Row(r, SheetDateLayout))},
	}

	_, err := w.values.Append(w.sheetID, w.layout.Range(), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return &ServiceError{Service: "spreadsheet", Err: err}
	}
	return nil
}

// HeaderRow returns the first row of the sheet, trailing empty cells omitted.
func (w *SheetWriter) HeaderRow(ctx context.Context) ([]string, error) {
	resp, err := w.values.Get(w.sheetID, w.headerRange()).Context(ctx).Do()
	if err != nil {
		return nil, &ServiceError{Service: "spreadsheet", Err: err}
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	row := make([]string, len(resp.Values[0]))
	for i, v := range resp.Values[0] {
		row[i] = fmt.Sprint(v)
	}
	return row, nil
}

// WriteHeader overwrites row 1 with the layout's column labels.
func (w *SheetWriter) WriteHeader(ctx context.Context) error {
	vr := &sheets.ValueRange{
		Values: [][]interface{}{toCells(w.layout.Headers())},
	}

	_, err := w.values.Update(w.sheetID, w.headerRange(), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return &ServiceError{Service: "spreadsheet", Err: err}
	}
	return nil
}

func (w *SheetWriter) headerRange() string {
	return "A1:" + models.ColumnLetter(len(w.layout.Columns)) + "1"
}

func toCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}
