package models

// Publication is a published paper or article reported by a student.
// Unlike the other kinds, the proof document is optional; the DOI or the
// publication itself is usually evidence enough.
type Publication struct {
	SubmissionBase
	OrcidID         *string `gorm:"column:orcid_id" json:"orcid_id,omitempty"`
	Author          string  `gorm:"column:author" json:"author"`
	Year            int     `gorm:"column:year" json:"year"`
	DOI             *string `gorm:"column:doi" json:"doi,omitempty"`
	Keywords        string  `gorm:"column:keywords" json:"keywords"`
	Abstract        string  `gorm:"column:abstract" json:"abstract"`
	PublicationType string  `gorm:"column:publication_type" json:"publication_type"`
}

func (Publication) TableName() string { return "publications" }

func (p *Publication) Base() *SubmissionBase { return &p.SubmissionBase }

func (p *Publication) Kind() SubmissionKind { return KindPublication }

func (p *Publication) setFields(f Fields) error {
	var err error
	if p.Author = f.get("author"); p.Author == "" {
		return &MissingFieldError{Field: "author"}
	}
	if p.Year, err = f.requiredInt("year"); err != nil {
		return err
	}
	if p.PublicationType = f.get("publication_type"); p.PublicationType == "" {
		return &MissingFieldError{Field: "publication_type"}
	}
	p.OrcidID = f.optional("orcid_id")
	p.DOI = f.optional("doi")
	p.Keywords = f.get("keywords")
	p.Abstract = f.get("abstract")
	return nil
}
