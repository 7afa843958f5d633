package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "TITLE"},
		[][]string{
			{"1", "Road resurfacing"},
			{"42", "IT"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // header, separator, two rows

	// Both rows start their second column at the same offset.
	assert.Contains(t, lines[2], "1   Road resurfacing")
	assert.Contains(t, lines[3], "42  IT")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable(
		[]string{"A", "B", "C"},
		[][]string{{"x"}},
	)
	assert.Contains(t, out, "x")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "lon…", Truncate("longer text", 4))
	assert.Equal(t, "unchanged", Truncate("unchanged", 0))
}

func TestStage_UsesLabel(t *testing.T) {
	// Styled output still contains the human label.
	assert.Contains(t, Stage("WON"), "Won")
	assert.Contains(t, Stage("DOC_PREP"), "Preparing docs")
}
