// Package types provides type definitions for the structured CV data used throughout cvgen.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// ContactInfo represents the contact block of a CV.
// Name and Email are always present after resolution, possibly as empty
// strings; absence of upstream data never yields a missing field.
type ContactInfo struct {
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Title        string `yaml:"title,omitempty"`
	Phone        string `yaml:"phone,omitempty"`
	Location     string `yaml:"location,omitempty"`
	Website      string `yaml:"website,omitempty"`
	LinkedIn     string `yaml:"linkedin,omitempty"`
	GitHub       string `yaml:"github,omitempty"`
	PortraitPath string `yaml:"portrait_path,omitempty"`
}

// Skill represents one skill category with its ordered items
type Skill struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Language represents a language proficiency entry
type Language struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"` // e.g. "Muttersprache", "Fließend"
}

// Certification represents a certification or professional achievement
type Certification struct {
	Title         string    `yaml:"title"`
	Issuer        string    `yaml:"issuer"`
	Date          time.Time `yaml:"date"`
	CredentialID  string    `yaml:"credential_id,omitempty"`
	CredentialURL string    `yaml:"credential_url,omitempty"`
}

// Document is the fully resolved CV model handed to the renderer.
// It is built once per invocation and immutable thereafter. Every string in
// Sections is pre-rendered, fully escaped LaTeX; the renderer inserts those
// values verbatim.
type Document struct {
	Contact        ContactInfo       `yaml:"contact"`
	Profile        string            `yaml:"profile,omitempty"`
	Skills         []Skill           `yaml:"skills,omitempty"`
	Languages      []Language        `yaml:"languages,omitempty"`
	Certifications []Certification   `yaml:"certifications,omitempty"`
	Sections       map[string]string `yaml:"sections,omitempty"`
}

// Stable section keys used as template slot names.
const (
	SectionWorkHistory  = "Beruflicher Werdegang"
	SectionEducation    = "Bildungsweg"
	SectionProjects     = "Referenzprojekte"
	SectionAvailability = "Verfügbarkeit"
)

// Section returns the pre-rendered section for key, and whether it exists.
func (d *Document) Section(key string) (string, bool) {
	s, ok := d.Sections[key]
	return s, ok
}
