package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReviewRequest struct {
	Comment string `json:"comment"`
}

// ApproveSubmission marks a submission approved. Only the faculty member
// stamped as the reviewer may act; the comment is optional.
func ApproveSubmission(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := submissionService().Approve(id, userID.(int), req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission approved successfully",
		"kind":       rec.Kind(),
		"submission": rec,
	})
}

// RejectSubmission marks a submission rejected. The comment carries the
// rejection reason and must not be blank.
func RejectSubmission(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := submissionService().Reject(id, userID.(int), req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission rejected",
		"kind":       rec.Kind(),
		"submission": rec,
	})
}
