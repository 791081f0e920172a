package content_test

import (
	"testing"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	page, err := content.Default()
	require.NoError(t, err)

	assert.Equal(t, "Everything Talent", page.Brand.Name)
	assert.Len(t, page.Team.Members, 7)
	assert.Len(t, page.Values.Items, 6)
	assert.Len(t, page.Journey.Events, 4)
	assert.Len(t, page.Story.Blocks, 3)

	t.Run("values keep declaration order", func(t *testing.T) {
		var titles []string
		for _, v := range page.Values.Items {
			titles = append(titles, v.Title)
		}
		assert.Equal(t, []string{
			"Customer Success", "Innovation", "Simplicity",
			"Transparency", "Inclusivity", "Security",
		}, titles)
	})

	t.Run("story titles keep declaration order", func(t *testing.T) {
		assert.Equal(t, "The Journey to Transform Recruitment", page.Story.Blocks[0].Title)
		assert.Equal(t, "Combining Innovation with Efficiency", page.Story.Blocks[1].Title)
		assert.Equal(t, "Democratizing Recruitment Tools", page.Story.Blocks[2].Title)
	})

	t.Run("footer columns", func(t *testing.T) {
		require.Len(t, page.Footer.Columns, 3)
		counts := map[string]int{}
		for _, col := range page.Footer.Columns {
			counts[col.Title] = len(col.Items)
		}
		assert.Equal(t, map[string]int{"Resources": 7, "Get Started": 7, "Legal": 4}, counts)
	})

	t.Run("each call returns an independent copy", func(t *testing.T) {
		other, err := content.Default()
		require.NoError(t, err)
		other.Team.Members[0].Name = "Changed"
		assert.Equal(t, "Vikram Sinha", page.Team.Members[0].Name)
	})
}

func TestInitials(t *testing.T) {
	page, err := content.Default()
	require.NoError(t, err)

	want := []string{"VS", "RI", "AJ", "SL", "MC", "ER", "DK"}
	for i, member := range page.Team.Members {
		assert.Equal(t, want[i], member.Initials(), member.Name)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single token", "Cher", "C"},
		{"extra whitespace", "  Ada \t Lovelace ", "AL"},
		{"decomposed accent", "E\u0301mile Zola", "\u00c9Z"},
		{"three tokens", "Mary Ann Evans", "MAE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.Initials(tt.in))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		page, err := content.Load(afero.NewMemMapFs(), "")
		require.NoError(t, err)
		assert.Equal(t, "Our Story", page.Story.Heading)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := content.Load(afero.NewMemMapFs(), "/content.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/content.yaml")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/content.yaml", []byte("brand: [unterminated"), 0o644))

		_, err := content.Load(fs, "/content.yaml")
		require.Error(t, err)
		assert.NotErrorIs(t, err, content.ErrInvalid)
	})

	t.Run("document with the wrong shape is rejected", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/content.yaml", []byte("brand:\n  name: Acme\n"), 0o644))

		_, err := content.Load(fs, "/content.yaml")
		assert.ErrorIs(t, err, content.ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	t.Run("unknown glyph", func(t *testing.T) {
		page, err := content.Default()
		require.NoError(t, err)
		page.Values.Items[2].Icon = "sparkles"

		err = content.Validate(page)
		assert.ErrorIs(t, err, content.ErrInvalid)
		assert.Contains(t, err.Error(), "glyph")
	})

	t.Run("team size is fixed", func(t *testing.T) {
		page, err := content.Default()
		require.NoError(t, err)
		page.Team.Members = page.Team.Members[:6]

		assert.ErrorIs(t, content.Validate(page), content.ErrInvalid)
	})

	t.Run("footer items must not be blank", func(t *testing.T) {
		page, err := content.Default()
		require.NoError(t, err)
		page.Footer.Columns[2].Items[0] = ""

		assert.ErrorIs(t, content.Validate(page), content.ErrInvalid)
	})
}
