package controllers

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"student-activity-api/models"
	"student-activity-api/services"
	"student-activity-api/utils"

	"github.com/gin-gonic/gin"
)

// maxDocumentSize limits proof document uploads.
const maxDocumentSize = 10 * 1024 * 1024 // 10MB

var allowedDocumentTypes = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// CreateSubmission accepts a multipart form: a kind discriminator, the
// kind-specific fields, and an optional proof document under "document".
func CreateSubmission(c *gin.Context) {
	userID, _ := c.Get("userID")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected multipart form data"})
		return
	}

	fields := models.Fields{}
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = utils.SanitizeInput(values[0])
		}
	}

	kind := models.SubmissionKind(fields["kind"])
	delete(fields, "kind")

	input := services.CreateSubmissionInput{
		Kind:    kind,
		OwnerID: userID.(int),
		Fields:  fields,
	}

	if fh, err := c.FormFile("document"); err == nil {
		if fh.Size > maxDocumentSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
			return
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedDocumentTypes[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		defer f.Close()

		input.Document = f
		input.DocumentName = fh.Filename
	}

	rec, err := submissionService().Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Submission created successfully",
		"kind":       rec.Kind(),
		"submission": rec,
	})
}

// GetSubmission returns one submission. Students see their own records,
// faculty the ones assigned to them, admins everything.
func GetSubmission(c *gin.Context) {
	rec, ok := loadSubmissionForCaller(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, submissionPayload(rec))
}

// ListSubmissions lists by caller role: students get their own records,
// faculty their assigned ones. Admins pass owner_id or reviewer_id.
func ListSubmissions(c *gin.Context) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	status, ok := parseStatusQuery(c)
	if !ok {
		return
	}

	svc := submissionService()
	var (
		records []models.SubmissionRecord
		err     error
	)

	switch roleID.(int) {
	case models.RoleStudent:
		records, err = svc.ListByOwner(userID.(int), status)
	case models.RoleFaculty:
		records, err = svc.ListByReviewer(userID.(int), status)
	default:
		if ownerID, convErr := strconv.Atoi(c.Query("owner_id")); convErr == nil {
			records, err = svc.ListByOwner(ownerID, status)
		} else if reviewerID, convErr := strconv.Atoi(c.Query("reviewer_id")); convErr == nil {
			records, err = svc.ListByReviewer(reviewerID, status)
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id or reviewer_id is required"})
			return
		}
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissionListPayload(records),
		"total":       len(records),
	})
}

// DownloadDocument streams the submission's proof document.
func DownloadDocument(c *gin.Context) {
	rec, ok := loadSubmissionForCaller(c)
	if !ok {
		return
	}

	stream, ref, err := submissionService().OpenDocument(rec.Base().SubmissionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Disposition", `attachment; filename="`+ref+`"`)
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, stream)
}

// loadSubmissionForCaller fetches the submission and enforces the
// role-based visibility rules shared by the read endpoints.
func loadSubmissionForCaller(c *gin.Context) (models.SubmissionRecord, bool) {
	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	rec, err := submissionService().Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}

	base := rec.Base()
	switch roleID.(int) {
	case models.RoleStudent:
		if base.OwnerID != userID.(int) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your submission"})
			return nil, false
		}
	case models.RoleFaculty:
		if base.ReviewerID != userID.(int) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Submission is not assigned to you"})
			return nil, false
		}
	}
	return rec, true
}
