package services

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"student-activity-api/models"
)

func technicalEventInput(doc io.Reader) CreateSubmissionInput {
	return CreateSubmissionInput{
		Kind:    models.KindTechnicalEvent,
		OwnerID: 42,
		Fields: models.Fields{
			"title":       "Smart India Hackathon",
			"description": "36-hour national hackathon",
			"event_date":  "2026-02-14",
			"host":        "AICTE",
			"category":    "hackathon",
			"achievement": "Winner",
		},
		Document:     doc,
		DocumentName: "certificate.pdf",
	}
}

func createTechnicalEvent(t *testing.T, svc *SubmissionService) models.SubmissionRecord {
	t.Helper()
	rec, err := svc.Create(technicalEventInput(strings.NewReader("%PDF-1.4 proof")))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	return rec
}

func TestCreateStampsReviewerAndDefaults(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, docs := newTestService(t, db)

	rec := createTechnicalEvent(t, svc)
	base := rec.Base()

	if base.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %s", base.Status)
	}
	if base.DeletionFlag {
		t.Fatal("expected deletion flag to be false")
	}
	if base.ReviewerID != 7 {
		t.Fatalf("expected reviewer 7, got %d", base.ReviewerID)
	}
	if base.SubmissionID == "" {
		t.Fatal("expected a submission id")
	}
	if base.DocumentRef == nil {
		t.Fatal("expected a document reference")
	}

	f, err := docs.Open(*base.DocumentRef)
	if err != nil {
		t.Fatalf("stored document not retrievable: %v", err)
	}
	f.Close()
}

func TestCreateRequiresDocumentExceptPublications(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)

	in := technicalEventInput(nil)
	in.Document = nil
	var missing *models.MissingFieldError
	if _, err := svc.Create(in); !errors.As(err, &missing) || missing.Field != "document" {
		t.Fatalf("expected MissingFieldError for document, got %v", err)
	}

	pub := CreateSubmissionInput{
		Kind:    models.KindPublication,
		OwnerID: 42,
		Fields: models.Fields{
			"title":            "Energy-aware scheduling",
			"author":           "Sana Iyer",
			"year":             "2026",
			"publication_type": "journal",
			"doi":              "10.1000/xyz123",
		},
	}
	rec, err := svc.Create(pub)
	if err != nil {
		t.Fatalf("publication without document should succeed, got %v", err)
	}
	if rec.Base().DocumentRef != nil {
		t.Fatal("expected no document reference")
	}
}

func TestCreateResolvesOwnerErrors(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)

	in := technicalEventInput(strings.NewReader("data"))
	in.OwnerID = 999
	if _, err := svc.Create(in); !errors.Is(err, ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestCreateCompensatesWhenInsertFails(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, docs := newTestService(t, db)

	// Force the record persist to fail after the document is saved.
	if err := db.Migrator().DropTable(&models.TechnicalEvent{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	if _, err := svc.Create(technicalEventInput(strings.NewReader("%PDF-1.4 proof"))); err == nil {
		t.Fatal("expected Create to fail")
	}

	entries, err := os.ReadDir(docs.Root())
	if err != nil {
		t.Fatalf("failed to read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected orphaned document to be removed, found %d files", len(entries))
	}
}

func TestApproveWithoutCommentSucceeds(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	updated, err := svc.Approve(rec.Base().SubmissionID, 7, "")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if updated.Base().Status != models.StatusApproved {
		t.Fatalf("expected approved, got %s", updated.Base().Status)
	}
	if updated.Base().ReviewComment != nil {
		t.Fatalf("expected no comment, got %q", *updated.Base().ReviewComment)
	}
}

func TestRejectRequiresComment(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	for _, comment := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Reject(rec.Base().SubmissionID, 7, comment); !errors.Is(err, ErrCommentRequired) {
			t.Fatalf("expected ErrCommentRequired for %q, got %v", comment, err)
		}
	}

	// Still pending afterwards.
	fresh, err := svc.Get(rec.Base().SubmissionID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fresh.Base().Status != models.StatusPending {
		t.Fatalf("expected pending after failed rejects, got %s", fresh.Base().Status)
	}
}

func TestRejectStoresComment(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	updated, err := svc.Reject(rec.Base().SubmissionID, 7, "Insufficient proof")
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if updated.Base().Status != models.StatusRejected {
		t.Fatalf("expected rejected, got %s", updated.Base().Status)
	}
	if updated.Base().ReviewComment == nil || *updated.Base().ReviewComment != "Insufficient proof" {
		t.Fatalf("expected stored comment, got %v", updated.Base().ReviewComment)
	}
}

func TestReviewerCanReviseDecision(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)
	id := rec.Base().SubmissionID

	if _, err := svc.Reject(id, 7, "Wrong certificate attached"); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	updated, err := svc.Approve(id, 7, "")
	if err != nil {
		t.Fatalf("re-approval returned error: %v", err)
	}
	if updated.Base().Status != models.StatusApproved {
		t.Fatalf("expected approved after revision, got %s", updated.Base().Status)
	}
}

func TestWrongReviewerForbidden(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	if _, err := svc.Approve(rec.Base().SubmissionID, 9, ""); !errors.Is(err, ErrNotAssignedReviewer) {
		t.Fatalf("expected ErrNotAssignedReviewer, got %v", err)
	}

	fresh, err := svc.Get(rec.Base().SubmissionID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fresh.Base().Status != models.StatusPending {
		t.Fatalf("record changed by forbidden approve: %s", fresh.Base().Status)
	}
}

func TestFlagUnflagRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)
	id := rec.Base().SubmissionID

	if _, err := svc.Reject(id, 7, "Insufficient proof"); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}

	flagged, err := svc.Flag(id, "")
	if err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if !flagged.Base().DeletionFlag {
		t.Fatal("expected deletion flag set")
	}

	// Flag is idempotent.
	if _, err := svc.Flag(id, ""); err != nil {
		t.Fatalf("repeat Flag returned error: %v", err)
	}

	unflagged, err := svc.Unflag(id)
	if err != nil {
		t.Fatalf("Unflag returned error: %v", err)
	}
	base := unflagged.Base()
	if base.DeletionFlag {
		t.Fatal("expected deletion flag cleared")
	}
	if base.Status != models.StatusRejected {
		t.Fatalf("status disturbed by flag round trip: %s", base.Status)
	}
	if base.ReviewComment == nil || *base.ReviewComment != "Insufficient proof" {
		t.Fatalf("review comment disturbed by flag round trip: %v", base.ReviewComment)
	}
}

func TestFlagRecordsDeletionNote(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	flagged, err := svc.Flag(rec.Base().SubmissionID, "duplicate of an earlier entry")
	if err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if flagged.Base().ReviewComment == nil || *flagged.Base().ReviewComment != "duplicate of an earlier entry" {
		t.Fatalf("deletion note not recorded: %v", flagged.Base().ReviewComment)
	}
}

func TestFlagUnknownSubmission(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)

	if _, err := svc.Flag("ffffffff-0000-0000-0000-000000000000", ""); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestFinalizeDeletionRemovesRecordAndDocument(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, docs := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)
	id := rec.Base().SubmissionID
	ref := *rec.Base().DocumentRef

	if _, err := svc.Flag(id, ""); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}
	if err := svc.FinalizeDeletion(id); err != nil {
		t.Fatalf("FinalizeDeletion returned error: %v", err)
	}

	if _, err := svc.Get(id); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound after deletion, got %v", err)
	}
	if _, err := docs.Open(ref); !errors.Is(err, ErrDocumentMissing) {
		t.Fatalf("expected document gone, got %v", err)
	}

	// A second call reports not found instead of crashing.
	if err := svc.FinalizeDeletion(id); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound on repeat, got %v", err)
	}
}

func TestFinalizeDeletionSurvivesDocumentFailure(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, docs := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)
	id := rec.Base().SubmissionID

	// Remove the document out of band; the record removal must still win.
	if err := docs.Remove(*rec.Base().DocumentRef); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := svc.FinalizeDeletion(id); err != nil {
		t.Fatalf("FinalizeDeletion returned error: %v", err)
	}
	if _, err := svc.Get(id); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}
}

func TestListByReviewerAndStatus(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	pending := models.StatusPending
	records, err := svc.ListByReviewer(7, &pending)
	if err != nil {
		t.Fatalf("ListByReviewer returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(records))
	}
	if records[0].Base().SubmissionID != rec.Base().SubmissionID {
		t.Fatalf("unexpected record %s", records[0].Base().SubmissionID)
	}

	// The other faculty sees nothing.
	records, err = svc.ListByReviewer(9, nil)
	if err != nil {
		t.Fatalf("ListByReviewer returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records for faculty 9, got %d", len(records))
	}
}

func TestListByOwnerSpansKinds(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)

	createTechnicalEvent(t, svc)
	if _, err := svc.Create(CreateSubmissionInput{
		Kind:    models.KindPublication,
		OwnerID: 42,
		Fields: models.Fields{
			"title":            "Energy-aware scheduling",
			"author":           "Sana Iyer",
			"year":             "2026",
			"publication_type": "journal",
		},
	}); err != nil {
		t.Fatalf("Create publication returned error: %v", err)
	}

	records, err := svc.ListByOwner(42, nil)
	if err != nil {
		t.Fatalf("ListByOwner returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records across kinds, got %d", len(records))
	}

	kinds := map[models.SubmissionKind]bool{}
	for _, r := range records {
		kinds[r.Kind()] = true
	}
	if !kinds[models.KindTechnicalEvent] || !kinds[models.KindPublication] {
		t.Fatalf("expected both kinds, got %v", kinds)
	}
}

func TestListFlagged(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)

	kept := createTechnicalEvent(t, svc)
	doomed := createTechnicalEvent(t, svc)
	if _, err := svc.Flag(doomed.Base().SubmissionID, ""); err != nil {
		t.Fatalf("Flag returned error: %v", err)
	}

	records, err := svc.ListFlagged()
	if err != nil {
		t.Fatalf("ListFlagged returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one flagged record, got %d", len(records))
	}
	if records[0].Base().SubmissionID == kept.Base().SubmissionID {
		t.Fatal("unflagged record showed up in flagged listing")
	}
}

func TestOpenDocumentStreamsStoredFile(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	stream, ref, err := svc.OpenDocument(rec.Base().SubmissionID)
	if err != nil {
		t.Fatalf("OpenDocument returned error: %v", err)
	}
	defer stream.Close()

	if ref != *rec.Base().DocumentRef {
		t.Fatalf("expected ref %s, got %s", *rec.Base().DocumentRef, ref)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		t.Fatalf("failed to read stream: %v", err)
	}
	if string(data) != "%PDF-1.4 proof" {
		t.Fatalf("unexpected document content: %q", data)
	}
}

func TestReviewerSnapshotSurvivesAdvisorChange(t *testing.T) {
	db := newTestDB(t)
	seedReviewPair(t, db)
	svc, _ := newTestService(t, db)
	rec := createTechnicalEvent(t, svc)

	// Re-point the student to faculty 9 after creation.
	if err := db.Model(&models.User{}).Where("user_id = ?", 42).Update("advisor_id", 9).Error; err != nil {
		t.Fatalf("failed to update advisor: %v", err)
	}

	fresh, err := svc.Get(rec.Base().SubmissionID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fresh.Base().ReviewerID != 7 {
		t.Fatalf("reviewer snapshot lost: got %d", fresh.Base().ReviewerID)
	}

	// And the original reviewer still acts on it.
	if _, err := svc.Approve(rec.Base().SubmissionID, 7, ""); err != nil {
		t.Fatalf("original reviewer blocked after advisor change: %v", err)
	}
}
