package display

import (
	"testing"

	"github.com/lox/niuniu/internal/deck"
	"github.com/lox/niuniu/niuniu"
	"github.com/stretchr/testify/assert"
)

func TestRenderResult(t *testing.T) {
	SetColor(false)

	t.Run("niu niu double", func(t *testing.T) {
		h := deck.MustParseHand("5 5 K Q J")
		out := RenderResult(h, niuniu.EvaluateHand(h))

		assert.Contains(t, out, "5 5 K Q J")
		assert.Contains(t, out, "[5 5 10]  sum 20")
		assert.Contains(t, out, "[10 10]  sum 20")
		assert.Contains(t, out, "10 = 10")
		assert.Contains(t, out, "10 (Niu Niu!)")
		assert.NotContains(t, out, "used (3↔6)")
	})

	t.Run("swap shown", func(t *testing.T) {
		h := deck.MustParseHand("1 2 3 4 5")
		out := RenderResult(h, niuniu.EvaluateHand(h))

		assert.Contains(t, out, "used (3↔6)")
		assert.Contains(t, out, "[1 2 6 4 5]")
		assert.Contains(t, out, "card 3: 3 → 6")
		assert.Contains(t, out, "score")
	})

	t.Run("no niu", func(t *testing.T) {
		h := deck.MustParseHand("A A A 2 2")
		out := RenderResult(h, niuniu.EvaluateHand(h))
		assert.Contains(t, out, "No Niu")
		assert.NotContains(t, out, "score")
	})
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "No Niu", Summary(niuniu.Result{}))
	assert.Equal(t, "Niu Niu, double", Summary(niuniu.EvaluateHand(niuniu.MustHand(5, 5, 10, 10, 10))))
	assert.Equal(t, "Niu 8, 3↔6 swap", Summary(niuniu.EvaluateHand(niuniu.MustHand(1, 2, 3, 4, 5))))
}
