package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

func TestPrintSources_ListsNamesSorted(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	printer.PrintSources(sources.Set{
		sources.Skills: map[string]any{},
		sources.Basis:  map[string]any{},
	})

	result := out.String()
	assert.Contains(t, result, "Sources")
	assert.Contains(t, result, "- basis")
	assert.Contains(t, result, "- skills")
	assert.Less(t, strings.Index(result, "basis"), strings.Index(result, "skills"))
}

func TestPrintDocument_SummarizesModel(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	printer.PrintDocument(&types.Document{
		Contact: types.ContactInfo{Name: "Max Mustermann", Email: "max@example.de"},
		Skills:  []types.Skill{{Category: "Cloud", Items: []string{"Azure"}}},
		Sections: map[string]string{
			types.SectionWorkHistory: "...",
		},
	})

	result := out.String()
	assert.Contains(t, result, "Max Mustermann")
	assert.Contains(t, result, "1 categories")
	assert.Contains(t, result, "Beruflicher Werdegang")
}

func TestPrintDocument_NilDocumentPrintsNothing(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	printer.PrintDocument(nil)

	assert.Empty(t, out.String())
}

func TestPrintCompilation_ShowsRunAndOutput(t *testing.T) {
	var out strings.Builder
	printer := NewPrinter(&out)

	printer.PrintCompilation("1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", "/tmp/cv.pdf")

	result := out.String()
	assert.Contains(t, result, "PDF Compilation")
	assert.Contains(t, result, "1b9d6bcd")
	assert.Contains(t, result, "/tmp/cv.pdf")
}
