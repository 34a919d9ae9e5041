package services

import (
	"io"
	"log"
	"strings"
	"time"

	"student-activity-api/models"

	"github.com/google/uuid"
)

// Notifier receives lifecycle events for best-effort delivery (mail).
// Failures must never block or fail the lifecycle operation itself.
type Notifier interface {
	SubmissionCreated(rec models.SubmissionRecord)
	SubmissionReviewed(rec models.SubmissionRecord)
}

// SubmissionService is the lifecycle engine: it enforces the verification
// state machine (pending → approved/rejected, re-decidable), the
// orthogonal deletion-flag workflow, and the document lifecycle each
// submission owns.
type SubmissionService struct {
	repo   *SubmissionRepository
	docs   *DocumentStore
	owners *OwnershipService
	notify Notifier // optional
}

func NewSubmissionService(repo *SubmissionRepository, docs *DocumentStore, owners *OwnershipService, notify Notifier) *SubmissionService {
	return &SubmissionService{repo: repo, docs: docs, owners: owners, notify: notify}
}

// CreateSubmissionInput carries everything a creation needs. Document is
// nil when the caller attached no file; DocumentName is the original
// filename, used only to preserve the extension.
type CreateSubmissionInput struct {
	Kind         models.SubmissionKind
	OwnerID      int
	Fields       models.Fields
	Document     io.Reader
	DocumentName string
}

// Create validates the kind fields, stamps the reviewer, saves the
// document, and persists the record. It is all-or-nothing: when the
// record insert fails after a successful document save, the orphaned
// document is removed before the error returns.
func (s *SubmissionService) Create(in CreateSubmissionInput) (models.SubmissionRecord, error) {
	rec, err := models.NewSubmission(in.Kind, in.Fields)
	if err != nil {
		return nil, err
	}

	spec, _ := models.KindSpecFor(in.Kind)
	if in.Document == nil && spec.DocumentRequired {
		return nil, &models.MissingFieldError{Field: "document"}
	}

	reviewerID, err := s.owners.ResolveReviewer(in.OwnerID)
	if err != nil {
		return nil, err
	}

	base := rec.Base()
	base.SubmissionID = uuid.New().String()
	base.OwnerID = in.OwnerID
	base.ReviewerID = reviewerID
	base.SubmittedAt = time.Now()
	base.Status = models.StatusPending

	if in.Document != nil {
		ref, err := s.docs.Save(in.Document, in.DocumentName)
		if err != nil {
			return nil, err
		}
		base.DocumentRef = &ref
	}

	if err := s.repo.Insert(rec); err != nil {
		if base.DocumentRef != nil {
			if rmErr := s.docs.Remove(*base.DocumentRef); rmErr != nil {
				log.Printf("Warning: failed to clean up document %s after insert failure: %v", *base.DocumentRef, rmErr)
			}
		}
		return nil, err
	}

	if s.notify != nil {
		s.notify.SubmissionCreated(rec)
	}
	return rec, nil
}

// Get returns the submission regardless of kind.
func (s *SubmissionService) Get(id string) (models.SubmissionRecord, error) {
	return s.repo.FindByID(id)
}

// Approve marks the submission approved. Only the stamped reviewer may
// act; the comment is optional. Approving an already-decided submission
// is allowed: a reviewer may revise a prior decision.
func (s *SubmissionService) Approve(id string, reviewerID int, comment string) (models.SubmissionRecord, error) {
	return s.review(id, reviewerID, models.StatusApproved, comment, false)
}

// Reject marks the submission rejected. The comment is the rejection
// reason and must not be blank.
func (s *SubmissionService) Reject(id string, reviewerID int, comment string) (models.SubmissionRecord, error) {
	return s.review(id, reviewerID, models.StatusRejected, comment, true)
}

func (s *SubmissionService) review(id string, reviewerID int, status models.VerificationStatus, comment string, commentRequired bool) (models.SubmissionRecord, error) {
	comment = strings.TrimSpace(comment)
	if commentRequired && comment == "" {
		return nil, ErrCommentRequired
	}

	rec, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	base := rec.Base()
	if base.ReviewerID != reviewerID {
		return nil, ErrNotAssignedReviewer
	}

	base.Status = status
	if comment != "" {
		base.ReviewComment = &comment
	} else {
		base.ReviewComment = nil
	}

	if err := s.repo.Save(rec); err != nil {
		return nil, err
	}
	if s.notify != nil {
		s.notify.SubmissionReviewed(rec)
	}
	return rec, nil
}

// Flag marks the submission for deletion review. Setting the flag is
// total and idempotent. A non-blank note is recorded as the review
// comment; when the note is blank the comment stays untouched.
func (s *SubmissionService) Flag(id string, note string) (models.SubmissionRecord, error) {
	return s.setFlag(id, true, strings.TrimSpace(note))
}

// Unflag clears the deletion flag, also idempotently. The review comment
// is left alone.
func (s *SubmissionService) Unflag(id string) (models.SubmissionRecord, error) {
	return s.setFlag(id, false, "")
}

func (s *SubmissionService) setFlag(id string, flagged bool, note string) (models.SubmissionRecord, error) {
	rec, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	base := rec.Base()
	if base.DeletionFlag == flagged && note == "" {
		return rec, nil
	}
	base.DeletionFlag = flagged
	if note != "" {
		base.ReviewComment = &note
	}
	if err := s.repo.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// FinalizeDeletion removes the record permanently, then deletes the
// attached document best-effort. The record is the source of truth; a
// document-delete failure is logged and swallowed so an orphaned file
// never blocks the removal. A repeat call reports ErrSubmissionNotFound,
// which makes blind retries safe.
func (s *SubmissionService) FinalizeDeletion(id string) error {
	rec, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(rec); err != nil {
		return err
	}

	if ref := rec.Base().DocumentRef; ref != nil {
		if err := s.docs.Remove(*ref); err != nil {
			log.Printf("Warning: failed to remove document %s for deleted submission %s: %v", *ref, id, err)
		}
	}
	return nil
}

// ListByOwner returns the owner's submissions, optionally by status.
func (s *SubmissionService) ListByOwner(ownerID int, status *models.VerificationStatus) ([]models.SubmissionRecord, error) {
	return s.repo.List(ListFilter{OwnerID: &ownerID, Status: status})
}

// ListByReviewer returns the submissions assigned to a reviewer,
// optionally by status.
func (s *SubmissionService) ListByReviewer(reviewerID int, status *models.VerificationStatus) ([]models.SubmissionRecord, error) {
	return s.repo.List(ListFilter{ReviewerID: &reviewerID, Status: status})
}

// ListFlagged returns every submission marked for deletion review.
func (s *SubmissionService) ListFlagged() ([]models.SubmissionRecord, error) {
	flagged := true
	return s.repo.List(ListFilter{Flagged: &flagged})
}

// OpenDocument streams the submission's proof document. The returned
// reference is the stored filename, which callers may use as a download
// name.
func (s *SubmissionService) OpenDocument(id string) (io.ReadCloser, string, error) {
	rec, err := s.repo.FindByID(id)
	if err != nil {
		return nil, "", err
	}
	ref := rec.Base().DocumentRef
	if ref == nil {
		return nil, "", ErrDocumentMissing
	}
	f, err := s.docs.Open(*ref)
	if err != nil {
		return nil, "", err
	}
	return f, *ref, nil
}
