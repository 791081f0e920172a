package icons_test

import (
	"strings"
	"testing"

	"github.com/everythingtalent/etsite/internal/view/icons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	t.Run("renders a registered glyph", func(t *testing.T) {
		var buf strings.Builder
		require.NoError(t, icons.Icon(icons.Rocket, "h-10 w-10").Render(&buf))

		html := buf.String()
		assert.True(t, strings.HasPrefix(html, "<svg"))
		assert.Contains(t, html, `class="lucide lucide-rocket h-10 w-10"`)
		assert.Contains(t, html, `aria-hidden="true"`)
		assert.Contains(t, html, "<path d=")
	})

	t.Run("unknown glyph renders nothing", func(t *testing.T) {
		assert.Nil(t, icons.Icon("no-such-glyph", ""))
	})
}

func TestHas(t *testing.T) {
	for _, name := range icons.Names() {
		assert.True(t, icons.Has(name), name)
	}
	assert.False(t, icons.Has(""))
	assert.False(t, icons.Has("Rocket"), "names are case sensitive")
}
