package models

// ReferralNotification is the email sent to the person receiving a referral.
type ReferralNotification struct {
	Recipient   string
	Referrer    string
	ProjectType string
	SheetLink   string
}
