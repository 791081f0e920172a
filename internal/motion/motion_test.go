package motion_test

import (
	"strings"
	"testing"
	"time"

	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestSequence(t *testing.T) {
	seq := motion.NewSequence("visible")
	assert.Equal(t, "visible", seq.Name())
	assert.False(t, seq.Started())

	assert.True(t, seq.Start(), "first start transitions")
	assert.True(t, seq.Started())
	assert.False(t, seq.Start(), "second start is a no-op")
	assert.True(t, seq.Started())

	var none *motion.Sequence
	assert.False(t, none.Started())
	assert.Empty(t, none.Name())
	assert.NotPanics(t, func() {
		assert.False(t, none.Start(), "a nil sequence never starts")
	})
}

func TestStagger(t *testing.T) {
	assert.Equal(t, motion.Default, motion.Stagger(0))
	assert.Equal(t, 300*time.Millisecond, motion.Stagger(3).Delay)
	assert.Equal(t, 500*time.Millisecond, motion.Stagger(3).Duration)
	assert.Equal(t, "--reveal-delay:200ms;--reveal-duration:500ms;--reveal-offset:20px", motion.Stagger(2).Style())
}

func TestInView(t *testing.T) {
	var anim motion.AnimatedOnView = motion.InView{Transition: motion.Stagger(1), Class: "text-center"}

	html := render(t, anim.Animate(g.Text("hello")))
	assert.Contains(t, html, `class="reveal text-center"`)
	assert.Contains(t, html, `data-reveal="view"`)
	assert.Contains(t, html, "--reveal-delay:100ms")
	assert.Contains(t, html, "hello")
	assert.NotContains(t, html, motion.VisibleClass)
}

func TestGrouped(t *testing.T) {
	seq := motion.NewSequence("visible")
	var anim motion.AnimatedOnView = motion.Grouped{Transition: motion.Default, Sequence: seq}

	hidden := render(t, anim.Animate(g.Text("card")))
	assert.Contains(t, hidden, `data-reveal="group"`)
	assert.Contains(t, hidden, `data-sequence="visible"`)
	assert.Contains(t, hidden, `data-variant="hidden"`)
	assert.NotContains(t, hidden, motion.VisibleClass)
	assert.Contains(t, hidden, "card", "content is present before the sequence starts")

	seq.Start()
	visible := render(t, anim.Animate(g.Text("card")))
	assert.Contains(t, visible, `data-variant="visible"`)
	assert.Contains(t, visible, `class="reveal is-visible"`)
}
