package render_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/domain/render"
)

func decode(t *testing.T, dataURL string) string {
	t.Helper()
	const prefix = "data:text/html;charset=utf-8,"
	require.True(t, strings.HasPrefix(dataURL, prefix))
	html, err := url.PathUnescape(strings.TrimPrefix(dataURL, prefix))
	require.NoError(t, err)
	return html
}

func TestDataURL_IconLayout(t *testing.T) {
	out, err := render.DataURL("https://example.com/icon.png", "Title", "Body", entity.DirectionLeftToRight)
	require.NoError(t, err)

	html := decode(t, out)
	assert.Contains(t, html, "https://example.com/icon.png")
	assert.Contains(t, html, "Title")
	assert.Contains(t, html, "Body")
	assert.Contains(t, html, "float:left")
	assert.Contains(t, html, `dir="ltr"`)
}

func TestDataURL_IconLayoutRTL(t *testing.T) {
	out, err := render.DataURL("https://example.com/icon.png", "Title", "Body", entity.DirectionRightToLeft)
	require.NoError(t, err)

	html := decode(t, out)
	assert.Contains(t, html, "float:right")
	assert.Contains(t, html, `dir="rtl"`)
}

func TestDataURL_SingleLineLayout(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		out, err := render.DataURL("", "Only title", "", entity.DirectionLeftToRight)
		require.NoError(t, err)

		html := decode(t, out)
		assert.Contains(t, html, "Only title")
		assert.Contains(t, html, `class="title"`)
	})

	t.Run("body only", func(t *testing.T) {
		out, err := render.DataURL("", "", "Only body", entity.DirectionLeftToRight)
		require.NoError(t, err)

		html := decode(t, out)
		assert.Contains(t, html, "Only body")
		assert.Contains(t, html, `class="description"`)
	})
}

func TestDataURL_TwoLineLayout(t *testing.T) {
	out, err := render.DataURL("", "Title", "Body", entity.DirectionLeftToRight)
	require.NoError(t, err)

	html := decode(t, out)
	assert.Contains(t, html, "Title")
	assert.Contains(t, html, "Body")
}

func TestDataURL_BothEmptyUsesTwoLineLayout(t *testing.T) {
	// Neither field set is not the exactly-one case; the two-line layout
	// renders with empty slots.
	out, err := render.DataURL("", "", "", entity.DirectionLeftToRight)
	require.NoError(t, err)
	decode(t, out)
}

func TestDataURL_EscapesMarkup(t *testing.T) {
	out, err := render.DataURL("", "<script>alert(1)</script>", "b", entity.DirectionLeftToRight)
	require.NoError(t, err)

	html := decode(t, out)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
