package services

import (
	"errors"
	"fmt"

	"student-activity-api/models"

	"gorm.io/gorm"
)

// OwnershipService resolves which faculty member reviews a student's
// submissions. The result is read once at creation time and stamped onto
// the record; later advisor changes never touch existing submissions.
type OwnershipService struct {
	db *gorm.DB
}

func NewOwnershipService(db *gorm.DB) *OwnershipService {
	return &OwnershipService{db: db}
}

// ResolveReviewer returns the user id of the student's current advisor.
func (s *OwnershipService) ResolveReviewer(ownerID int) (int, error) {
	var student models.User
	err := s.db.
		Where("user_id = ? AND role_id = ? AND delete_at IS NULL", ownerID, models.RoleStudent).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrOwnerNotFound
		}
		return 0, fmt.Errorf("failed to load student %d: %w", ownerID, err)
	}

	if student.AdvisorID == nil {
		return 0, ErrNoAdvisorAssigned
	}
	return *student.AdvisorID, nil
}
