package services

import (
	"errors"
	"fmt"
	"time"

	"student-activity-api/models"

	"gorm.io/gorm"
)

// SubmissionRepository stores submission records, one table per kind
// sharing a common UUID key space. Lookups by id scan the kind catalog;
// listings union the kind tables with the same base-column filter.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// ListFilter narrows listings by base columns shared across kind tables.
// Nil fields are not applied.
type ListFilter struct {
	OwnerID    *int
	ReviewerID *int
	Status     *models.VerificationStatus
	Flagged    *bool
}

// Insert persists a new record into its kind table.
func (r *SubmissionRepository) Insert(rec models.SubmissionRecord) error {
	now := time.Now()
	base := rec.Base()
	base.CreateAt = &now
	base.UpdateAt = &now
	if err := r.db.Create(rec).Error; err != nil {
		return fmt.Errorf("failed to persist %s submission: %w", rec.Kind(), err)
	}
	return nil
}

// FindByID scans the kind tables for the submission. Kind tables share
// one key space, so at most one table can hold the id.
func (r *SubmissionRepository) FindByID(id string) (models.SubmissionRecord, error) {
	for _, kind := range models.Kinds() {
		spec, _ := models.KindSpecFor(kind)
		rec := spec.New()
		err := r.db.Where("submission_id = ?", id).First(rec).Error
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up submission %s: %w", id, err)
		}
	}
	return nil, ErrSubmissionNotFound
}

// Save writes the record back in full. This is a plain read-modify-write
// without an optimistic-concurrency token; under concurrent updates the
// last writer wins, which matches the single-human-reviewer workflow.
func (r *SubmissionRepository) Save(rec models.SubmissionRecord) error {
	now := time.Now()
	rec.Base().UpdateAt = &now
	if err := r.db.Save(rec).Error; err != nil {
		return fmt.Errorf("failed to update submission %s: %w", rec.Base().SubmissionID, err)
	}
	return nil
}

// Delete removes the record permanently.
func (r *SubmissionRepository) Delete(rec models.SubmissionRecord) error {
	if err := r.db.Delete(rec).Error; err != nil {
		return fmt.Errorf("failed to delete submission %s: %w", rec.Base().SubmissionID, err)
	}
	return nil
}

// List unions all kind tables under the filter. Each table is read in
// submitted_at order; no ordering is guaranteed across kinds.
func (r *SubmissionRepository) List(filter ListFilter) ([]models.SubmissionRecord, error) {
	var out []models.SubmissionRecord
	for _, kind := range models.Kinds() {
		spec, _ := models.KindSpecFor(kind)

		tx := r.db.Order("submitted_at")
		if filter.OwnerID != nil {
			tx = tx.Where("owner_id = ?", *filter.OwnerID)
		}
		if filter.ReviewerID != nil {
			tx = tx.Where("reviewer_id = ?", *filter.ReviewerID)
		}
		if filter.Status != nil {
			tx = tx.Where("status = ?", *filter.Status)
		}
		if filter.Flagged != nil {
			tx = tx.Where("deletion_flag = ?", *filter.Flagged)
		}

		rows, err := spec.List(tx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s submissions: %w", kind, err)
		}
		out = append(out, rows...)
	}
	return out, nil
}
