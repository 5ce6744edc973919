package referrals

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"referral-intake-server/models"
)

// RowAppender stores a submission as a spreadsheet row.
type RowAppender interface {
	AppendRow(ctx context.Context, r models.ReferralSubmission) error
	SheetLink() string
}

type Mailer interface {
	Notify(ctx context.Context, note models.ReferralNotification) error
}

// Outcome reports which side effects happened. A row can be appended while
// the notification fails; nothing is rolled back in that case.
type Outcome struct {
	SubmissionID string
	RowAppended  bool
	Notified     bool
}

type Service struct {
	sheet    RowAppender
	mailer   Mailer
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(sheet RowAppender, mailer Mailer, location *time.Location, logger *zap.Logger) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		sheet:    sheet,
		mailer:   mailer,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// Submit validates the referral, appends it to the sheet and notifies the
// recipient, stopping at the first failure.
func (s *Service) Submit(ctx context.Context, r models.ReferralSubmission) (Outcome, error) {
	out := Outcome{SubmissionID: uuid.NewString()}
	log := s.logger.With(zap.String("submission_id", out.SubmissionID))

	if err := r.Validate(); err != nil {
		log.Info("referral rejected", zap.Error(err))
		return out, err
	}

	r.SubmittedAt = s.now().In(s.location)

	if err := s.sheet.AppendRow(ctx, r); err != nil {
		log.Error("appending referral row failed", zap.Error(err))
		return out, err
	}
	out.RowAppended = true
	log.Info("referral row appended", zap.String("project_type", r.ProjectType))

	note := models.ReferralNotification{
		Recipient:   r.RecipientEmail,
		Referrer:    r.ReferrerName,
		ProjectType: r.ProjectType,
		SheetLink:   s.sheet.SheetLink(),
	}
	if err := s.mailer.Notify(ctx, note); err != nil {
		log.Error("sending referral notification failed",
			zap.String("recipient", r.RecipientEmail),
			zap.Error(err),
		)
		return out, err
	}
	out.Notified = true
	log.Info("referral notification sent", zap.String("recipient", r.RecipientEmail))

	return out, nil
}
