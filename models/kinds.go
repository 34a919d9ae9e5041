package models

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MissingFieldError reports a required kind-specific field that the
// creation request did not supply.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// InvalidFieldError reports a supplied field whose value could not be
// interpreted (bad date, non-numeric amount, unknown enum value).
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return "invalid field " + e.Field + ": " + e.Reason
}

// Fields carries the raw kind-specific values of a creation request.
// Values are form-encoded strings; whitespace-only values count as absent.
type Fields map[string]string

func (f Fields) get(name string) string {
	return strings.TrimSpace(f[name])
}

func (f Fields) optional(name string) *string {
	v := f.get(name)
	if v == "" {
		return nil
	}
	return &v
}

func (f Fields) requiredDate(name string) (time.Time, error) {
	raw := f.get(name)
	if raw == "" {
		return time.Time{}, &MissingFieldError{Field: name}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &InvalidFieldError{Field: name, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

func (f Fields) optionalDate(name string) (*time.Time, error) {
	if f.get(name) == "" {
		return nil, nil
	}
	t, err := f.requiredDate(name)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (f Fields) requiredInt(name string) (int, error) {
	raw := f.get(name)
	if raw == "" {
		return 0, &MissingFieldError{Field: name}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidFieldError{Field: name, Reason: "expected an integer"}
	}
	return n, nil
}

func (f Fields) optionalFloat(name string) (*float64, error) {
	raw := f.get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &InvalidFieldError{Field: name, Reason: "expected a number"}
	}
	return &v, nil
}

type fieldSetter interface {
	setFields(Fields) error
}

// KindSpec describes one entry of the closed submission-kind catalog.
type KindSpec struct {
	Kind             SubmissionKind
	DocumentRequired bool
	New              func() SubmissionRecord
	List             func(tx *gorm.DB) ([]SubmissionRecord, error)
}

type recordPtr[T any] interface {
	*T
	SubmissionRecord
}

func newKindSpec[T any, PT recordPtr[T]](kind SubmissionKind, documentRequired bool) KindSpec {
	return KindSpec{
		Kind:             kind,
		DocumentRequired: documentRequired,
		New: func() SubmissionRecord {
			var v T
			return PT(&v)
		},
		List: func(tx *gorm.DB) ([]SubmissionRecord, error) {
			var rows []T
			if err := tx.Find(&rows).Error; err != nil {
				return nil, err
			}
			out := make([]SubmissionRecord, 0, len(rows))
			for i := range rows {
				out = append(out, PT(&rows[i]))
			}
			return out, nil
		},
	}
}

// kindCatalog is the fixed set of submission kinds. Order matters only
// for stable iteration; there is no runtime registration.
var kindCatalog = []KindSpec{
	newKindSpec[CulturalEvent](KindCulturalEvent, true),
	newKindSpec[SportsEvent](KindSportsEvent, true),
	newKindSpec[TechnicalEvent](KindTechnicalEvent, true),
	newKindSpec[ClubActivity](KindClubActivity, true),
	newKindSpec[Publication](KindPublication, false),
	newKindSpec[JobOpportunity](KindJobOpportunity, true),
}

// Kinds returns every submission kind in catalog order.
func Kinds() []SubmissionKind {
	kinds := make([]SubmissionKind, 0, len(kindCatalog))
	for _, spec := range kindCatalog {
		kinds = append(kinds, spec.Kind)
	}
	return kinds
}

// KindSpecFor looks up the catalog entry for a kind.
func KindSpecFor(kind SubmissionKind) (KindSpec, bool) {
	for _, spec := range kindCatalog {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return KindSpec{}, false
}

// NewSubmission builds an unsaved record of the given kind from raw
// request fields, validating the base and kind-specific requirements.
func NewSubmission(kind SubmissionKind, fields Fields) (SubmissionRecord, error) {
	spec, ok := KindSpecFor(kind)
	if !ok {
		return nil, &InvalidFieldError{Field: "kind", Reason: "unknown submission kind"}
	}

	rec := spec.New()
	base := rec.Base()
	if base.Title = fields.get("title"); base.Title == "" {
		return nil, &MissingFieldError{Field: "title"}
	}
	base.Description = fields.get("description")

	if err := rec.(fieldSetter).setFields(fields); err != nil {
		return nil, err
	}
	return rec, nil
}

// SubmissionModels returns one empty model per kind table, for migration.
func SubmissionModels() []interface{} {
	models := make([]interface{}, 0, len(kindCatalog))
	for _, spec := range kindCatalog {
		models = append(models, spec.New())
	}
	return models
}
