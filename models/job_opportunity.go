package models

import "time"

// Offer types for job opportunity submissions.
const (
	OfferInternship = "internship"
	OfferPlacement  = "placement"
)

// JobOpportunity records an internship or placement offer. Internships
// carry a duration and an optional stipend; placements carry a CTC.
type JobOpportunity struct {
	SubmissionBase
	CompanyName string    `gorm:"column:company_name" json:"company_name"`
	StartDate   time.Time `gorm:"column:start_date" json:"start_date"`
	Role        string    `gorm:"column:role" json:"role"`
	OfferType   string    `gorm:"column:offer_type" json:"offer_type"`
	Duration    *string   `gorm:"column:duration" json:"duration,omitempty"`
	Stipend     *float64  `gorm:"column:stipend" json:"stipend,omitempty"`
	CTC         *float64  `gorm:"column:ctc" json:"ctc,omitempty"`
}

func (JobOpportunity) TableName() string { return "job_opportunities" }

func (j *JobOpportunity) Base() *SubmissionBase { return &j.SubmissionBase }

func (j *JobOpportunity) Kind() SubmissionKind { return KindJobOpportunity }

func (j *JobOpportunity) setFields(f Fields) error {
	var err error
	if j.CompanyName = f.get("company_name"); j.CompanyName == "" {
		return &MissingFieldError{Field: "company_name"}
	}
	if j.StartDate, err = f.requiredDate("start_date"); err != nil {
		return err
	}
	if j.Role = f.get("role"); j.Role == "" {
		return &MissingFieldError{Field: "role"}
	}

	switch f.get("offer_type") {
	case OfferInternship:
		j.OfferType = OfferInternship
		if j.Duration = f.optional("duration"); j.Duration == nil {
			return &MissingFieldError{Field: "duration"}
		}
		if j.Stipend, err = f.optionalFloat("stipend"); err != nil {
			return err
		}
	case OfferPlacement:
		j.OfferType = OfferPlacement
		ctc, err := f.optionalFloat("ctc")
		if err != nil {
			return err
		}
		if ctc == nil {
			return &MissingFieldError{Field: "ctc"}
		}
		j.CTC = ctc
	case "":
		return &MissingFieldError{Field: "offer_type"}
	default:
		return &InvalidFieldError{Field: "offer_type", Reason: "must be internship or placement"}
	}
	return nil
}
