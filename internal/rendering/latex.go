package rendering

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/mfreitag/cvgen/internal/types"
)

//go:embed templates/*.tex
var defaultTemplates embed.FS

// Template delimiters. The defaults clash with LaTeX braces, so templates
// use guillemet-style markers instead.
const (
	delimLeft  = "<<"
	delimRight = ">>"
)

// certDateLayout formats certification dates in the rendered CV.
const certDateLayout = "01/2006"

// TemplateData is the data structure passed to the CV template.
// All scalar fields are escaped; Sections bodies are inserted verbatim
// because the resolver has already escaped them.
type TemplateData struct {
	Name         string
	Email        string
	Title        string
	Phone        string
	Location     string
	Website      string
	LinkedIn     string
	GitHub       string
	PortraitPath string
	Profile      string

	Sections       []SectionBlock
	Skills         []SkillRow
	Languages      []LanguageRow
	Certifications []CertificationRow
}

// SectionBlock is one named, pre-rendered section slot
type SectionBlock struct {
	Title string
	Body  string
}

// SkillRow is one skill category row in the template
type SkillRow struct {
	Category string
	Items    string
}

// LanguageRow is one language proficiency row in the template
type LanguageRow struct {
	Name  string
	Level string
}

// CertificationRow is one certification entry in the template
type CertificationRow struct {
	Title  string
	Issuer string
	Date   string
}

// RenderCV renders a resolved Document to LaTeX. If templatePath is empty
// the embedded German CV template is used.
func RenderCV(doc *types.Document, templatePath string) (string, error) {
	tmpl, err := parseTemplate("german_cv.tex", templatePath)
	if err != nil {
		return "", err
	}

	data := buildTemplateData(doc)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute CV template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// RenderCoverLetter renders a resolved CoverLetter to LaTeX. If templatePath
// is empty the embedded cover letter template is used.
func RenderCoverLetter(letter *types.CoverLetter, templatePath string) (string, error) {
	tmpl, err := parseTemplate("cover_letter.tex", templatePath)
	if err != nil {
		return "", err
	}

	data := map[string]string{
		"SenderName":       EscapeLaTeX(letter.Sender.Name),
		"SenderEmail":      EscapeLaTeX(letter.Sender.Email),
		"SenderPhone":      EscapeLaTeX(letter.Sender.Phone),
		"SenderLocation":   EscapeLaTeX(letter.Sender.Location),
		"RecipientName":    EscapeLaTeX(letter.Recipient.Name),
		"RecipientCompany": EscapeLaTeX(letter.Recipient.Company),
		"RecipientStreet":  EscapeLaTeX(letter.Recipient.Street),
		"RecipientCity":    EscapeLaTeX(letter.Recipient.City),
		"Date":             EscapeLaTeX(letter.Date),
		"Subject":          EscapeLaTeX(letter.Subject),
		"Body":             Transcode(letter.Body),
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute cover letter template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseTemplate loads a template from path, falling back to the embedded
// default named by defaultName when path is empty.
func parseTemplate(defaultName, path string) (*template.Template, error) {
	var content []byte
	var err error

	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", path),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", path),
				Cause:   err,
			}
		}
	} else {
		content, err = defaultTemplates.ReadFile("templates/" + defaultName)
		if err != nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("embedded template missing: %s", defaultName),
				Cause:   err,
			}
		}
	}

	tmpl, err := template.New(defaultName).
		Delims(delimLeft, delimRight).
		Funcs(template.FuncMap{
			"escape": EscapeLaTeX,
		}).
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// buildTemplateData escapes the Document's scalar content and arranges the
// pre-rendered sections in their fixed template order, with any additional
// custom sections following in sorted order.
func buildTemplateData(doc *types.Document) *TemplateData {
	data := &TemplateData{
		Name:         EscapeLaTeX(doc.Contact.Name),
		Email:        EscapeLaTeX(doc.Contact.Email),
		Title:        EscapeLaTeX(doc.Contact.Title),
		Phone:        EscapeLaTeX(doc.Contact.Phone),
		Location:     EscapeLaTeX(doc.Contact.Location),
		Website:      EscapeLaTeX(doc.Contact.Website),
		LinkedIn:     EscapeLaTeX(doc.Contact.LinkedIn),
		GitHub:       EscapeLaTeX(doc.Contact.GitHub),
		PortraitPath: doc.Contact.PortraitPath,
		Profile:      EscapeLines(doc.Profile),
	}

	sectionOrder := []string{
		types.SectionWorkHistory,
		types.SectionEducation,
		types.SectionProjects,
		types.SectionAvailability,
	}
	known := make(map[string]bool, len(sectionOrder))
	for _, key := range sectionOrder {
		known[key] = true
		if body, ok := doc.Sections[key]; ok {
			data.Sections = append(data.Sections, SectionBlock{
				Title: EscapeLaTeX(key),
				Body:  body,
			})
		}
	}

	extra := make([]string, 0, len(doc.Sections))
	for key := range doc.Sections {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		data.Sections = append(data.Sections, SectionBlock{
			Title: EscapeLaTeX(key),
			Body:  doc.Sections[key],
		})
	}

	for _, skill := range doc.Skills {
		escaped := make([]string, len(skill.Items))
		for i, item := range skill.Items {
			escaped[i] = EscapeLaTeX(item)
		}
		data.Skills = append(data.Skills, SkillRow{
			Category: EscapeLaTeX(skill.Category),
			Items:    strings.Join(escaped, ", "),
		})
	}

	for _, lang := range doc.Languages {
		data.Languages = append(data.Languages, LanguageRow{
			Name:  EscapeLaTeX(lang.Name),
			Level: EscapeLaTeX(lang.Level),
		})
	}

	for _, cert := range doc.Certifications {
		data.Certifications = append(data.Certifications, CertificationRow{
			Title:  EscapeLaTeX(cert.Title),
			Issuer: EscapeLaTeX(cert.Issuer),
			Date:   cert.Date.Format(certDateLayout),
		})
	}

	return data
}
