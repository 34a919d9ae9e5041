package controllers

import (
	"errors"
	"net/http"

	"student-activity-api/config"
	"student-activity-api/models"
	"student-activity-api/services"

	"github.com/gin-gonic/gin"
)

// submissionService wires the lifecycle engine from the shared DB handle
// and the configured upload root, the same way handlers construct other
// services per request.
func submissionService() *services.SubmissionService {
	return services.NewSubmissionService(
		services.NewSubmissionRepository(config.DB),
		services.NewDocumentStore(config.UploadPath()),
		services.NewOwnershipService(config.DB),
		services.NewNotificationService(config.DB),
	)
}

// respondServiceError maps the service error taxonomy onto distinct HTTP
// responses. Validation failures carry their own message; everything else
// gets a fixed one so internals do not leak.
func respondServiceError(c *gin.Context, err error) {
	var missing *models.MissingFieldError
	var invalid *models.InvalidFieldError

	switch {
	case errors.Is(err, services.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
	case errors.Is(err, services.ErrDocumentMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
	case errors.Is(err, services.ErrNotAssignedReviewer):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the assigned reviewer can act on this submission"})
	case errors.Is(err, services.ErrCommentRequired),
		errors.Is(err, services.ErrEmptyUpload),
		errors.Is(err, services.ErrOwnerNotFound),
		errors.Is(err, services.ErrNoAdvisorAssigned),
		errors.As(err, &missing),
		errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDocumentUnreadable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Document could not be read"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// submissionPayload is the JSON shape of a record in API responses; the
// kind discriminator rides alongside the record itself.
func submissionPayload(rec models.SubmissionRecord) gin.H {
	return gin.H{
		"kind":       rec.Kind(),
		"submission": rec,
	}
}

func submissionListPayload(records []models.SubmissionRecord) []gin.H {
	out := make([]gin.H, 0, len(records))
	for _, rec := range records {
		out = append(out, submissionPayload(rec))
	}
	return out
}

// parseStatusQuery reads an optional ?status= filter.
func parseStatusQuery(c *gin.Context) (*models.VerificationStatus, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}
	status := models.VerificationStatus(raw)
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
		return &status, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
	return nil, false
}
