package compile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedEngine(t *testing.T) {
	assert.True(t, SupportedEngine("pdflatex"))
	assert.True(t, SupportedEngine("xelatex"))
	assert.True(t, SupportedEngine("lualatex"))
	assert.False(t, SupportedEngine("latexmk"))
	assert.False(t, SupportedEngine(""))
}

func TestToPDF_UnsupportedEngine(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cv.pdf")

	_, err := ToPDF(context.Background(), "\\documentclass{article}", out, "latexmk")

	require.Error(t, err)
	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, compErr.Message, "latexmk")
}

func TestCompilationError_MessageWithoutCause(t *testing.T) {
	err := &CompilationError{Message: "PDF generation failed"}
	assert.Equal(t, "compilation error: PDF generation failed", err.Error())
}

func TestCompilationError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &CompilationError{Message: "engine failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "engine failed")
}
