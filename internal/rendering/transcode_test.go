package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanBlocks_OnlyBullets(t *testing.T) {
	blocks := ScanBlocks("- erstes Item\n- zweites Item\n- drittes Item")

	require.Len(t, blocks, 1)
	assert.Equal(t, ListKind, blocks[0].Kind)
	assert.Equal(t, []string{"erstes Item", "zweites Item", "drittes Item"}, blocks[0].Lines)
}

func TestScanBlocks_OnlyProse(t *testing.T) {
	blocks := ScanBlocks("erste Zeile\nzweite Zeile")

	require.Len(t, blocks, 1)
	assert.Equal(t, ProseKind, blocks[0].Kind)
	assert.Equal(t, []string{"erste Zeile", "zweite Zeile"}, blocks[0].Lines)
}

func TestScanBlocks_MixedProseAndBullets(t *testing.T) {
	text := "Einleitung\n- Punkt eins\n- Punkt zwei\nAbschluss"
	blocks := ScanBlocks(text)

	require.Len(t, blocks, 3)
	assert.Equal(t, ProseKind, blocks[0].Kind)
	assert.Equal(t, []string{"Einleitung"}, blocks[0].Lines)
	assert.Equal(t, ListKind, blocks[1].Kind)
	assert.Equal(t, []string{"Punkt eins", "Punkt zwei"}, blocks[1].Lines)
	assert.Equal(t, ProseKind, blocks[2].Kind)
	assert.Equal(t, []string{"Abschluss"}, blocks[2].Lines)
}

func TestScanBlocks_EmptyLinesDoNotSplitBlocks(t *testing.T) {
	blocks := ScanBlocks("- eins\n\n- zwei")

	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"eins", "zwei"}, blocks[0].Lines)
}

func TestScanBlocks_IndentedBulletsRecognized(t *testing.T) {
	blocks := ScanBlocks("  - eingerückt")

	require.Len(t, blocks, 1)
	assert.Equal(t, ListKind, blocks[0].Kind)
	assert.Equal(t, []string{"eingerückt"}, blocks[0].Lines)
}

func TestScanBlocks_DashWithoutSpaceIsProse(t *testing.T) {
	blocks := ScanBlocks("-kein Item")

	require.Len(t, blocks, 1)
	assert.Equal(t, ProseKind, blocks[0].Kind)
}

func TestScanBlocks_EscapesContent(t *testing.T) {
	blocks := ScanBlocks("- 100% Abdeckung\nKosten & Nutzen")

	require.Len(t, blocks, 2)
	assert.Equal(t, []string{"100\\% Abdeckung"}, blocks[0].Lines)
	assert.Equal(t, []string{"Kosten \\& Nutzen"}, blocks[1].Lines)
}

func TestScanBlocks_EmptyInput(t *testing.T) {
	assert.Empty(t, ScanBlocks(""))
}

func TestJoinBlocks_ListBecomesItemize(t *testing.T) {
	result := JoinBlocks([]Block{{Kind: ListKind, Lines: []string{"eins", "zwei"}}})

	expected := "\\begin{itemize}\n  \\item eins\n  \\item zwei\n\\end{itemize}"
	assert.Equal(t, expected, result)
}

func TestJoinBlocks_ProseJoinedWithLineBreak(t *testing.T) {
	result := JoinBlocks([]Block{{Kind: ProseKind, Lines: []string{"eins", "zwei"}}})

	assert.Equal(t, "eins \\\\ zwei", result)
}

func TestJoinBlocks_BlocksSeparatedByBlankLine(t *testing.T) {
	result := JoinBlocks([]Block{
		{Kind: ProseKind, Lines: []string{"Einleitung"}},
		{Kind: ListKind, Lines: []string{"Punkt"}},
	})

	assert.Equal(t, "Einleitung\n\n\\begin{itemize}\n  \\item Punkt\n\\end{itemize}", result)
}

func TestTranscode_MixedDocument(t *testing.T) {
	text := "Projektbeschreibung\n- Datenpipeline aufgebaut\n- Kosten um 20% gesenkt\nWeitere Details auf Anfrage"
	result := Transcode(text)

	expected := "Projektbeschreibung\n\n" +
		"\\begin{itemize}\n  \\item Datenpipeline aufgebaut\n  \\item Kosten um 20\\% gesenkt\n\\end{itemize}\n\n" +
		"Weitere Details auf Anfrage"
	assert.Equal(t, expected, result)
}

func TestTranscode_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Transcode(""))
}
