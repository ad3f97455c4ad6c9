// Package sources loads the optional YAML payloads a CV is resolved from.
package sources

// Logical source names. Each names one independently maintained YAML
// document; any of them may be absent.
const (
	Basis          = "basis"          // structured primary source (cv_basis.yaml)
	Stations       = "stations"       // work history entries (berufliche_stationen.yaml)
	Profile        = "profile"        // legacy profile block (basedata.yaml)
	Skills         = "skills"         // skill records (skills.yaml)
	Projects       = "projects"       // project history (projekt_historie.yaml)
	Certifications = "certifications" // certification records (certifications.yaml)
	Config         = "config"         // generator configuration (cv_config.yaml)
)

// fileNames maps logical source names to their on-disk file names.
var fileNames = map[string]string{
	Basis:          "cv_basis.yaml",
	Stations:       "berufliche_stationen.yaml",
	Profile:        "basedata.yaml",
	Skills:         "skills.yaml",
	Projects:       "projekt_historie.yaml",
	Certifications: "certifications.yaml",
	Config:         "cv_config.yaml",
}

// Set holds the raw parsed payloads keyed by logical source name.
// A source that does not exist on disk is simply absent from the set; the
// accessors below degrade absent or mistyped payloads to empty values.
type Set map[string]any

// Mapping returns the named source as a mapping, or an empty mapping if the
// source is absent or not a mapping.
func (s Set) Mapping(name string) map[string]any {
	if m, ok := s[name].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Sequence returns the named source as a sequence, or an empty sequence if
// the source is absent or not a sequence.
func (s Set) Sequence(name string) []any {
	if l, ok := s[name].([]any); ok {
		return l
	}
	return nil
}
