package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FlagSubmission marks a submission for deletion review. Flagging an
// already-flagged submission succeeds without change; an optional
// comment is recorded as the deletion note.
func FlagSubmission(c *gin.Context) {
	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := submissionService().Flag(c.Param("id"), req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission flagged for deletion",
		"kind":       rec.Kind(),
		"submission": rec,
	})
}

// UnflagSubmission clears the deletion flag.
func UnflagSubmission(c *gin.Context) {
	rec, err := submissionService().Unflag(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Deletion flag cleared",
		"kind":       rec.Kind(),
		"submission": rec,
	})
}

// FinalizeSubmissionDeletion removes the record and its document for
// good. The route is admin-only and normally driven from the flagged
// list; the removal itself does not require the flag to be set.
func FinalizeSubmissionDeletion(c *gin.Context) {
	if err := submissionService().FinalizeDeletion(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted permanently"})
}

// GetFlaggedSubmissions lists every submission awaiting deletion review.
func GetFlaggedSubmissions(c *gin.Context) {
	records, err := submissionService().ListFlagged()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissionListPayload(records),
		"total":       len(records),
	})
}
