package referrals

import (
	"context"

	"referral-intake-server/models"
)

const testSheetLink = "https://docs.google.com/spreadsheets/d/test-sheet/edit?usp=sharing"

type fakeSheet struct {
	rows []models.ReferralSubmission
	err  error
}

func (f *fakeSheet) AppendRow(_ context.Context, r models.ReferralSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, r)
	return nil
}

func (f *fakeSheet) SheetLink() string {
	return testSheetLink
}

type fakeMailer struct {
	sent []models.ReferralNotification
	err  error
}

func (f *fakeMailer) Notify(_ context.Context, note models.ReferralNotification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, note)
	return nil
}

func exampleReferral() models.ReferralSubmission {
	return models.ReferralSubmission{
		ReferrerName:   "Jean Dupont",
		RecipientEmail: "marie@example.com",
		ClientName:     "Paul Martin",
		ClientPhone:    "0600000000",
		ClientEmail:    "paul@example.com",
		ProjectType:    "Vente",
		ProjectDetails: "",
		ProjectAddress: "12 rue de la Paix",
	}
}
