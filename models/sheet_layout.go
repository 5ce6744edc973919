package models

import (
	"errors"
	"fmt"
)

// SheetField names the submission value written into a spreadsheet column.
type SheetField string

const (
	FieldDate           SheetField = "date"
	FieldReferrerName   SheetField = "referrer_name"
	FieldRecipientEmail SheetField = "recipient_email"
	FieldClientName     SheetField = "client_name"
	FieldClientPhone    SheetField = "client_phone"
	FieldClientEmail    SheetField = "client_email"
	FieldProjectType    SheetField = "project_type"
	FieldProjectDetails SheetField = "project_details"
	FieldProjectAddress SheetField = "project_address"
	// FieldBlank reserves a column that is filled in by hand later on.
	FieldBlank SheetField = "blank"
)

var knownFields = map[SheetField]bool{
	FieldDate:           true,
	FieldReferrerName:   true,
	FieldRecipientEmail: true,
	FieldClientName:     true,
	FieldClientPhone:    true,
	FieldClientEmail:    true,
	FieldProjectType:    true,
	FieldProjectDetails: true,
	FieldProjectAddress: true,
	FieldBlank:          true,
}

type SheetColumn struct {
	Header string     `yaml:"header"`
	Field  SheetField `yaml:"field"`
}

// SheetLayout is the ordered column schema of the referral spreadsheet.
type SheetLayout struct {
	Name    string        `yaml:"name"`
	Columns []SheetColumn `yaml:"columns"`
}

// CompactLayout matches the ten-column sheet (A to J).
var CompactLayout = SheetLayout{
	Name: "compact",
	Columns: []SheetColumn{
		{Header: "Date", Field: FieldDate},
		{Header: "Nom complet du prescripteur", Field: FieldReferrerName},
		{Header: "Mail du receveur", Field: FieldRecipientEmail},
		{Header: "Nom client", Field: FieldClientName},
		{Header: "Tél client", Field: FieldClientPhone},
		{Header: "Mail client", Field: FieldClientEmail},
		{Header: "Projet concerné", Field: FieldProjectType},
		{Header: "Conseils patri/Marie", Field: FieldBlank},
		{Header: "Détails du projet", Field: FieldProjectDetails},
		{Header: "Adresse du projet", Field: FieldProjectAddress},
	},
}

// ExtendedLayout matches the 23-column sheet used for deal follow-up.
// Address comes before details, and the trailing columns stay blank.
var ExtendedLayout = SheetLayout{
	Name: "extended",
	Columns: []SheetColumn{
		{Header: "Date", Field: FieldDate},
		{Header: "Nom complet du prescripteur", Field: FieldReferrerName},
		{Header: "Mail du receveur", Field: FieldRecipientEmail},
		{Header: "Nom client", Field: FieldClientName},
		{Header: "Tél client", Field: FieldClientPhone},
		{Header: "Mail client", Field: FieldClientEmail},
		{Header: "Projet concerné", Field: FieldProjectType},
		{Header: "Conseils patri/Marie", Field: FieldBlank},
		{Header: "Adresse du projet", Field: FieldProjectAddress},
		{Header: "Détails du projet", Field: FieldProjectDetails},
		{Header: "Statut", Field: FieldBlank},
		{Header: "Date de signature", Field: FieldBlank},
		{Header: "Chiffre d'affaires", Field: FieldBlank},
		{Header: "Honoraires", Field: FieldBlank},
		{Header: "Commission prescripteur", Field: FieldBlank},
		{Header: "Date de paiement", Field: FieldBlank},
		{Header: "Mode de paiement", Field: FieldBlank},
		{Header: "N° facture", Field: FieldBlank},
		{Header: "Agence", Field: FieldBlank},
		{Header: "Conseiller en charge", Field: FieldBlank},
		{Header: "Date de relance", Field: FieldBlank},
		{Header: "Commentaires", Field: FieldBlank},
		{Header: "Clôturé", Field: FieldBlank},
	},
}

// BuiltinLayouts are selectable by name.
var BuiltinLayouts = map[string]SheetLayout{
	CompactLayout.Name:  CompactLayout,
	ExtendedLayout.Name: ExtendedLayout,
}

func (l SheetLayout) Validate() error {
	if len(l.Columns) == 0 {
		return errors.New("sheet layout has no columns")
	}
	for i, c := range l.Columns {
		if !knownFields[c.Field] {
			return fmt.Errorf("sheet layout column %d: unknown field %q", i+1, c.Field)
		}
	}
	return nil
}

// Row lays the submission out in column order.
func (l SheetLayout) Row(r ReferralSubmission, dateLayout string) []string {
	row := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		row[i] = r.FieldValue(c.Field, dateLayout)
	}
	return row
}

func (l SheetLayout) Headers() []string {
	headers := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Range is the A1 column span covered by the layout, e.g. "A:J".
func (l SheetLayout) Range() string {
	return "A:" + ColumnLetter(len(l.Columns))
}

// ColumnLetter converts a 1-based column index to its A1 letters.
func ColumnLetter(n int) string {
	var letters []byte
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return string(letters)
}
