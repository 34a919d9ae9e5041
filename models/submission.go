package models

import (
	"time"
)

// VerificationStatus is the three-valued review outcome of a submission.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
)

// SubmissionKind discriminates which specialized table a record lives in.
type SubmissionKind string

const (
	KindCulturalEvent  SubmissionKind = "cultural_event"
	KindSportsEvent    SubmissionKind = "sports_event"
	KindTechnicalEvent SubmissionKind = "technical_event"
	KindClubActivity   SubmissionKind = "club_activity"
	KindPublication    SubmissionKind = "publication"
	KindJobOpportunity SubmissionKind = "job_opportunity"
)

// SubmissionBase carries the columns shared by every submission kind.
// Each kind table embeds it, so the kind tables share one key space:
// submission_id is a UUID and globally unique across all of them.
//
// ReviewerID is stamped once at creation from the owner's advisor and is
// never re-derived afterwards, even if the advisor assignment changes.
type SubmissionBase struct {
	SubmissionID  string             `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	OwnerID       int                `gorm:"column:owner_id;index" json:"owner_id"`
	ReviewerID    int                `gorm:"column:reviewer_id;index" json:"reviewer_id"`
	Title         string             `gorm:"column:title" json:"title"`
	Description   string             `gorm:"column:description" json:"description"`
	SubmittedAt   time.Time          `gorm:"column:submitted_at" json:"submitted_at"`
	Status        VerificationStatus `gorm:"column:status" json:"status"`
	ReviewComment *string            `gorm:"column:review_comment" json:"review_comment,omitempty"`
	DeletionFlag  bool               `gorm:"column:deletion_flag" json:"deletion_flag"`
	DocumentRef   *string            `gorm:"column:document_ref" json:"document_ref,omitempty"`
	CreateAt      *time.Time         `gorm:"column:create_at" json:"create_at"`
	UpdateAt      *time.Time         `gorm:"column:update_at" json:"update_at"`
}

// SubmissionRecord is implemented by every kind model.
type SubmissionRecord interface {
	Base() *SubmissionBase
	Kind() SubmissionKind
}
