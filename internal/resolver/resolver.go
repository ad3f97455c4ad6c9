// Package resolver merges the raw YAML sources into the normalized CV model.
//
// Every field follows a fixed precedence chain: the structured primary
// source ("basis") wins, the legacy profile block ("profile") is consulted
// next, and absence degrades to an empty value. Resolution is best-effort
// for enumerable content and fails fast only where the renderer cannot
// recover, which is the contact name and email.
package resolver

import (
	"sort"
	"time"

	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

// certDateLayout is the accepted certification date format.
const certDateLayout = "2006-01-02"

// DefaultLanguages is the language seed used when none is configured.
var DefaultLanguages = []types.Language{
	{Name: "Deutsch", Level: "Muttersprache"},
	{Name: "Englisch", Level: "Fließend"},
}

// Overrides carries caller-supplied values that take precedence over any
// source.
type Overrides struct {
	PortraitPath string
}

// Resolver builds Documents from source sets. The zero value is not usable;
// construct with New.
type Resolver struct {
	languages []types.Language
	now       func() time.Time
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLanguages replaces the default language seed list
func WithLanguages(languages []types.Language) Option {
	return func(r *Resolver) {
		r.languages = languages
	}
}

// WithClock replaces the clock used for certification date fallbacks
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// New creates a Resolver with the default language seed and wall clock.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		languages: DefaultLanguages,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve merges the source set into one Document. A missing source never
// fails resolution; a contact name or email that cannot be coerced to a
// scalar does.
func (r *Resolver) Resolve(set sources.Set, overrides Overrides) (*types.Document, error) {
	contact, err := r.resolveContact(set, overrides)
	if err != nil {
		return nil, err
	}

	doc := &types.Document{
		Contact:        contact,
		Profile:        resolveProfile(set),
		Skills:         resolveSkills(set),
		Languages:      append([]types.Language(nil), r.languages...),
		Certifications: r.resolveCertifications(set),
		Sections:       map[string]string{},
	}

	if work := buildWorkHistory(set); work != "" {
		doc.Sections[types.SectionWorkHistory] = work
	}
	if education := buildEducation(set); education != "" {
		doc.Sections[types.SectionEducation] = education
	}
	if projects := buildProjects(set); projects != "" {
		doc.Sections[types.SectionProjects] = projects
	}
	if availability := buildAvailability(set); availability != "" {
		doc.Sections[types.SectionAvailability] = availability
	}

	return doc, nil
}

// resolveContact applies the two-source fallback chain for the contact
// block. Name and email are coerced strictly; everything else degrades.
func (r *Resolver) resolveContact(set sources.Set, overrides Overrides) (types.ContactInfo, error) {
	personal := sources.Child(set.Mapping(sources.Basis), "persoenliche_daten")
	profile := sources.Child(set.Mapping(sources.Profile), "profile_data")

	// Fall back to the legacy block wholesale when the primary source has no
	// personal data at all.
	if len(personal) == 0 {
		personal = map[string]any{
			"name":    sources.Localized(profile["name"]),
			"email":   sources.Text(profile["email"]),
			"telefon": sources.Text(profile["phone"]),
			"adresse": sources.Localized(profile["location"]),
		}
	}

	name, err := sources.TextStrict(personal["name"], "name")
	if err != nil {
		return types.ContactInfo{}, &StructuralError{Field: "name", Cause: err}
	}
	email, err := sources.TextStrict(personal["email"], "email")
	if err != nil {
		return types.ContactInfo{}, &StructuralError{Field: "email", Cause: err}
	}

	title := sources.Text(personal["titel"])
	if title == "" {
		title = sources.Localized(profile["title"])
	}
	linkedin := sources.Text(personal["linkedin"])
	if linkedin == "" {
		linkedin = sources.Text(profile["linkedin"])
	}
	github := sources.Text(personal["github"])
	if github == "" {
		github = sources.Text(profile["github"])
	}

	portrait := overrides.PortraitPath
	if portrait == "" {
		portrait = sources.Text(set.Mapping(sources.Config)["portrait_path"])
	}

	return types.ContactInfo{
		Name:         name,
		Email:        email,
		Title:        title,
		Phone:        sources.Text(personal["telefon"]),
		Location:     joinNonEmpty(", ", sources.Text(personal["adresse"]), sources.Text(personal["plz_ort"])),
		Website:      sources.Text(profile["website"]),
		LinkedIn:     linkedin,
		GitHub:       github,
		PortraitPath: portrait,
	}, nil
}

// resolveProfile reads the profile narrative from the primary source only.
// There is deliberately no fallback to the legacy profile block here even
// though the contact fields have one.
func resolveProfile(set sources.Set) string {
	cvSections := sources.Child(set.Mapping(sources.Basis), "sections")
	return sources.Localized(sources.Child(cvSections, "berufliches_profil"))
}

// resolveSkills groups skill records by category, preserving item order
// within a category and sorting categories for deterministic output.
func resolveSkills(set sources.Set) []types.Skill {
	byCategory := map[string][]string{}
	for _, record := range sources.Items(set.Mapping(sources.Skills), "skills") {
		entry, ok := record.(map[string]any)
		if !ok {
			continue
		}
		category := sources.Text(entry["category"])
		if category == "" {
			category = "Sonstige"
		}
		byCategory[category] = append(byCategory[category], sources.Text(entry["title"]))
	}

	if len(byCategory) == 0 {
		return nil
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	skills := make([]types.Skill, 0, len(categories))
	for _, category := range categories {
		skills = append(skills, types.Skill{Category: category, Items: byCategory[category]})
	}
	return skills
}

// resolveCertifications parses certification records independently. A
// record that is not a mapping is dropped; a date that does not parse falls
// back to today. Both are deliberate best-effort policies.
func (r *Resolver) resolveCertifications(set sources.Set) []types.Certification {
	var certs []types.Certification
	for _, record := range sources.Items(set.Mapping(sources.Certifications), "certifications") {
		entry, ok := record.(map[string]any)
		if !ok {
			continue
		}

		date := r.now()
		if raw := sources.Text(entry["date"]); raw != "" {
			if parsed, err := time.Parse(certDateLayout, raw); err == nil {
				date = parsed
			}
		}

		certs = append(certs, types.Certification{
			Title:         sources.Text(entry["title"]),
			Issuer:        sources.Text(entry["issuer"]),
			Date:          date,
			CredentialID:  sources.Text(entry["credential_id"]),
			CredentialURL: sources.Text(entry["credential_url"]),
		})
	}
	return certs
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	joined := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if joined != "" {
			joined += sep
		}
		joined += part
	}
	return joined
}
