package services

import "errors"

// Sentinel errors returned by the lifecycle services. Controllers match
// them with errors.Is to pick distinct HTTP responses; kind-specific
// validation failures surface as *models.MissingFieldError or
// *models.InvalidFieldError instead.
var (
	// ErrSubmissionNotFound means no kind table holds the given id.
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrNotAssignedReviewer means the acting faculty member is not the
	// reviewer stamped on the submission.
	ErrNotAssignedReviewer = errors.New("not the assigned reviewer")

	// ErrCommentRequired means a rejection was attempted without a reason.
	ErrCommentRequired = errors.New("rejection requires a comment")

	// ErrEmptyUpload means the uploaded document stream had zero bytes.
	ErrEmptyUpload = errors.New("uploaded file is empty")

	// ErrDocumentMissing means no stored file exists under the reference.
	ErrDocumentMissing = errors.New("document not found")

	// ErrDocumentUnreadable means the stored file exists but cannot be read.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrOwnerNotFound means the owner id does not resolve to a student.
	ErrOwnerNotFound = errors.New("owner is not a known student")

	// ErrNoAdvisorAssigned means the student has no faculty advisor yet.
	ErrNoAdvisorAssigned = errors.New("student has no advisor assigned")
)
