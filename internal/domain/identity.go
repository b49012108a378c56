package domain

import "errors"

// Identity-specific validation errors
var (
	// ErrSubjectNameEmpty is returned when an identity's subject name is empty.
	ErrSubjectNameEmpty = errors.New("subject name cannot be empty")
)

// LanguagePreference selects which question catalogs and prompt template
// a generation session uses.
type LanguagePreference string

// Supported language preferences. Any value other than LanguageChinese,
// including an empty or unrecognized tag, resolves to English.
const (
	LanguageEnglish LanguagePreference = "English"
	LanguageChinese LanguagePreference = "Chinese"
)

// IsChinese reports whether the preference selects the Chinese catalogs.
// Everything else falls through to English, matching the selection rule
// used for prompt templates.
func (p LanguagePreference) IsChinese() bool {
	return p == LanguageChinese
}

// Identity describes the subject a self-QA session is generated for.
// It is supplied once at the start of a session and never mutated.
type Identity struct {
	SubjectName  string             `json:"subject_name"`
	Introduction string             `json:"introduction"`
	GlobalBio    string             `json:"global_bio"`
	Language     LanguagePreference `json:"preferred_language"`
}

// NewIdentity creates an Identity after validating the subject name.
// The introduction and bio may be empty; the subject name may not, since
// the binding questions interpolate it.
func NewIdentity(subjectName, introduction, globalBio string, language LanguagePreference) (Identity, error) {
	identity := Identity{
		SubjectName:  subjectName,
		Introduction: introduction,
		GlobalBio:    globalBio,
		Language:     language,
	}

	if err := identity.Validate(); err != nil {
		return Identity{}, err
	}

	return identity, nil
}

// Validate checks that the identity carries the fields generation depends on.
func (i Identity) Validate() error {
	if i.SubjectName == "" {
		return ErrSubjectNameEmpty
	}
	return nil
}
