package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrintParams_DefaultMargins(t *testing.T) {
	params := buildPrintParams(&RenderRequest{HTML: "<p>x</p>"})

	assert.InDelta(t, mmToInches(210), params.paperWidth, 0.01)
	assert.InDelta(t, mmToInches(297), params.paperHeight, 0.01)
	assert.InDelta(t, mmToInches(DefaultMargins.Top), params.marginTop, 0.001)
	assert.InDelta(t, mmToInches(DefaultMargins.Left), params.marginLeft, 0.001)
	assert.False(t, params.landscape)
	assert.Empty(t, params.footerTemplate)
}

func TestBuildPrintParams_FooterNeedsRoom(t *testing.T) {
	params := buildPrintParams(&RenderRequest{
		HTML:       "<p>x</p>",
		Landscape:  true,
		Margins:    Margins{Top: 5, Right: 5, Bottom: 5, Left: 5},
		FooterHTML: FooterTemplate,
	})

	assert.True(t, params.landscape)
	assert.InDelta(t, mmToInches(10), params.marginBottom, 0.001)
	assert.InDelta(t, mmToInches(5), params.marginTop, 0.001)
}

func TestCompleteHTML(t *testing.T) {
	t.Run("wraps fragments", func(t *testing.T) {
		out := completeHTML(&RenderRequest{HTML: "<p>body</p>", Title: "P&L"})
		assert.Contains(t, out, "<!DOCTYPE html>")
		assert.Contains(t, out, "<title>P&amp;L</title>")
		assert.Contains(t, out, "<p>body</p>")
	})

	t.Run("keeps full documents", func(t *testing.T) {
		doc := "<!DOCTYPE html><html><body>x</body></html>"
		assert.Equal(t, doc, completeHTML(&RenderRequest{HTML: doc}))
	})
}

func TestChromedpRenderer_RejectsEmptyHTML(t *testing.T) {
	r, err := NewChromedpRenderer(nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Render(context.Background(), &RenderRequest{HTML: "   "})
	require.Error(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}

func TestEstimatePageCount(t *testing.T) {
	pdf := []byte("<< /Type /Pages /Count 2 >> << /Type /Page >> << /Type /Page >>")
	assert.Equal(t, 2, estimatePageCount(pdf))
	assert.Equal(t, 1, estimatePageCount([]byte("garbage")))
}
