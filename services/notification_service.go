package services

import (
	"fmt"
	"log"

	"student-activity-api/config"
	"student-activity-api/models"

	"gorm.io/gorm"
)

// NotificationService mails lifecycle events to the people involved.
// Every send is best-effort: SMTP problems are logged and dropped so the
// review workflow never depends on the mail server.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// SubmissionCreated mails the assigned reviewer about a new submission.
func (s *NotificationService) SubmissionCreated(rec models.SubmissionRecord) {
	base := rec.Base()

	var reviewer models.User
	if err := s.db.First(&reviewer, base.ReviewerID).Error; err != nil {
		log.Printf("Warning: notification skipped, reviewer %d not loaded: %v", base.ReviewerID, err)
		return
	}

	subject := "New submission awaiting review"
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>A new <b>%s</b> submission titled <b>%s</b> is awaiting your review.</p>",
		reviewer.FullName(), rec.Kind(), base.Title,
	)
	if err := config.SendMail([]string{reviewer.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to mail reviewer %d: %v", base.ReviewerID, err)
	}
}

// SubmissionReviewed mails the owner the review outcome.
func (s *NotificationService) SubmissionReviewed(rec models.SubmissionRecord) {
	base := rec.Base()

	var owner models.User
	if err := s.db.First(&owner, base.OwnerID).Error; err != nil {
		log.Printf("Warning: notification skipped, owner %d not loaded: %v", base.OwnerID, err)
		return
	}

	subject := fmt.Sprintf("Your submission has been %s", base.Status)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your submission <b>%s</b> has been <b>%s</b>.</p>",
		owner.FullName(), base.Title, base.Status,
	)
	if base.Status == models.StatusRejected && base.ReviewComment != nil {
		body += fmt.Sprintf("<p>Reason: %s</p>", *base.ReviewComment)
	}
	if err := config.SendMail([]string{owner.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to mail owner %d: %v", base.OwnerID, err)
	}
}
