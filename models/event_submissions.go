package models

import "time"

// Event-style submission kinds. Each one is the shared base plus the
// fields of that event family; they live in separate tables that share
// the submission_id key space.

type CulturalEvent struct {
	SubmissionBase
	EventDate   time.Time `gorm:"column:event_date" json:"event_date"`
	Host        string    `gorm:"column:host" json:"host"`
	Category    string    `gorm:"column:category" json:"category"`
	Achievement string    `gorm:"column:achievement" json:"achievement"`
}

func (CulturalEvent) TableName() string { return "cultural_events" }

func (e *CulturalEvent) Base() *SubmissionBase { return &e.SubmissionBase }

func (e *CulturalEvent) Kind() SubmissionKind { return KindCulturalEvent }

func (e *CulturalEvent) setFields(f Fields) error {
	var err error
	if e.EventDate, err = f.requiredDate("event_date"); err != nil {
		return err
	}
	if e.Host = f.get("host"); e.Host == "" {
		return &MissingFieldError{Field: "host"}
	}
	if e.Category = f.get("category"); e.Category == "" {
		return &MissingFieldError{Field: "category"}
	}
	e.Achievement = f.get("achievement")
	return nil
}

type TechnicalEvent struct {
	SubmissionBase
	EventDate   time.Time `gorm:"column:event_date" json:"event_date"`
	Host        string    `gorm:"column:host" json:"host"`
	Category    string    `gorm:"column:category" json:"category"`
	Achievement string    `gorm:"column:achievement" json:"achievement"`
}

func (TechnicalEvent) TableName() string { return "technical_events" }

func (e *TechnicalEvent) Base() *SubmissionBase { return &e.SubmissionBase }

func (e *TechnicalEvent) Kind() SubmissionKind { return KindTechnicalEvent }

func (e *TechnicalEvent) setFields(f Fields) error {
	var err error
	if e.EventDate, err = f.requiredDate("event_date"); err != nil {
		return err
	}
	if e.Host = f.get("host"); e.Host == "" {
		return &MissingFieldError{Field: "host"}
	}
	if e.Category = f.get("category"); e.Category == "" {
		return &MissingFieldError{Field: "category"}
	}
	e.Achievement = f.get("achievement")
	return nil
}

type SportsEvent struct {
	SubmissionBase
	StartDate   time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     time.Time `gorm:"column:end_date" json:"end_date"`
	Host        string    `gorm:"column:host" json:"host"`
	Category    string    `gorm:"column:category" json:"category"`
	Achievement string    `gorm:"column:achievement" json:"achievement"`
	Level       string    `gorm:"column:level" json:"level"`
	Role        string    `gorm:"column:role" json:"role"`
	Outcome     string    `gorm:"column:outcome" json:"outcome"`
}

func (SportsEvent) TableName() string { return "sports_events" }

func (e *SportsEvent) Base() *SubmissionBase { return &e.SubmissionBase }

func (e *SportsEvent) Kind() SubmissionKind { return KindSportsEvent }

func (e *SportsEvent) setFields(f Fields) error {
	var err error
	if e.StartDate, err = f.requiredDate("start_date"); err != nil {
		return err
	}
	if e.EndDate, err = f.requiredDate("end_date"); err != nil {
		return err
	}
	if e.Host = f.get("host"); e.Host == "" {
		return &MissingFieldError{Field: "host"}
	}
	if e.Category = f.get("category"); e.Category == "" {
		return &MissingFieldError{Field: "category"}
	}
	if e.Level = f.get("level"); e.Level == "" {
		return &MissingFieldError{Field: "level"}
	}
	if e.Role = f.get("role"); e.Role == "" {
		return &MissingFieldError{Field: "role"}
	}
	e.Achievement = f.get("achievement")
	e.Outcome = f.get("outcome")
	return nil
}

type ClubActivity struct {
	SubmissionBase
	StartDate   time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Host        string     `gorm:"column:host" json:"host"`
	Category    string     `gorm:"column:category" json:"category"`
	Achievement string     `gorm:"column:achievement" json:"achievement"`
	Position    string     `gorm:"column:position" json:"position"`
}

func (ClubActivity) TableName() string { return "club_activities" }

func (e *ClubActivity) Base() *SubmissionBase { return &e.SubmissionBase }

func (e *ClubActivity) Kind() SubmissionKind { return KindClubActivity }

func (e *ClubActivity) setFields(f Fields) error {
	var err error
	if e.StartDate, err = f.requiredDate("start_date"); err != nil {
		return err
	}
	if e.EndDate, err = f.optionalDate("end_date"); err != nil {
		return err
	}
	if e.Host = f.get("host"); e.Host == "" {
		return &MissingFieldError{Field: "host"}
	}
	if e.Position = f.get("position"); e.Position == "" {
		return &MissingFieldError{Field: "position"}
	}
	e.Category = f.get("category")
	e.Achievement = f.get("achievement")
	return nil
}
