package models

import (
	"time"

	"github.com/gin-gonic/gin/binding"
)

// ReferralSubmission is one filled-in referral form. It only lives for the
// duration of a request; the spreadsheet row is its sole trace.
type ReferralSubmission struct {
	ReferrerName   string    `form:"prescripteur" json:"referrer_name" binding:"required"`
	RecipientEmail string    `form:"email_receveur" json:"recipient_email" binding:"required"`
	ClientName     string    `form:"nom_client" json:"client_name" binding:"required"`
	ClientPhone    string    `form:"telephone_client" json:"client_phone" binding:"required"`
	ClientEmail    string    `form:"email_client" json:"client_email" binding:"required"`
	ProjectType    string    `form:"projet" json:"project_type" binding:"required,projecttype"`
	ProjectDetails string    `form:"details_projet" json:"project_details"`
	ProjectAddress string    `form:"adresse_projet" json:"project_address" binding:"required"`
	SubmittedAt    time.Time `form:"-" json:"submitted_at"`
}

// Validate runs the binding rules outside of a request. Fields are reported
// in struct order, which is the form order. Values are not trimmed, so
// whitespace counts as filled in.
func (r ReferralSubmission) Validate() error {
	return AsValidationError(binding.Validator.ValidateStruct(r))
}

// FieldValue returns the value bound to a sheet column field. Unknown fields
// and FieldBlank yield an empty cell.
func (r ReferralSubmission) FieldValue(field SheetField, dateLayout string) string {
	switch field {
	case FieldDate:
		return r.SubmittedAt.Format(dateLayout)
	case FieldReferrerName:
		return r.ReferrerName
	case FieldRecipientEmail:
		return r.RecipientEmail
	case FieldClientName:
		return r.ClientName
	case FieldClientPhone:
		return r.ClientPhone
	case FieldClientEmail:
		return r.ClientEmail
	case FieldProjectType:
		return r.ProjectType
	case FieldProjectDetails:
		return r.ProjectDetails
	case FieldProjectAddress:
		return r.ProjectAddress
	default:
		return ""
	}
}
