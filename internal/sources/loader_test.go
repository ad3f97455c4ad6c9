package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadFolder_ReadsKnownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cv_basis.yaml", "persoenliche_daten:\n  name: Max Mustermann\n")
	writeFile(t, dir, "skills.yaml", "skills:\n  - category: Cloud\n    title: Azure\n")

	set, err := LoadFolder(dir, "")

	require.NoError(t, err)
	personal := Child(set.Mapping(Basis), "persoenliche_daten")
	assert.Equal(t, "Max Mustermann", Text(personal["name"]))
	assert.Len(t, Items(set.Mapping(Skills), "skills"), 1)
}

func TestLoadFolder_MissingFilesAreNotAnError(t *testing.T) {
	set, err := LoadFolder(t.TempDir(), "")

	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoadFolder_ConfigReadFromSeparateFolder(t *testing.T) {
	dataDir := t.TempDir()
	configDir := t.TempDir()
	writeFile(t, configDir, "cv_config.yaml", "portrait_path: /fotos/portrait.jpg\n")

	set, err := LoadFolder(dataDir, configDir)

	require.NoError(t, err)
	assert.Equal(t, "/fotos/portrait.jpg", Text(set.Mapping(Config)["portrait_path"]))
}

func TestLoadFolder_MalformedYAMLIsAnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "cv_basis.yaml", "persoenliche_daten: [unclosed\n")

	_, err := LoadFolder(dir, "")

	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadInto_ParsesIntoStruct(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "letter.yaml", "subject: Bewerbung\nbody: Sehr geehrte Damen und Herren,\n")

	var out struct {
		Subject string `yaml:"subject"`
		Body    string `yaml:"body"`
	}
	err := LoadInto(filepath.Join(dir, "letter.yaml"), &out)

	require.NoError(t, err)
	assert.Equal(t, "Bewerbung", out.Subject)
}

func TestLoadInto_MissingFileIsAnError(t *testing.T) {
	var out map[string]any
	err := LoadInto(filepath.Join(t.TempDir(), "fehlt.yaml"), &out)

	require.Error(t, err)
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}
