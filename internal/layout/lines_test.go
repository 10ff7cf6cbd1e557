package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaraszi/billscan/internal/entity"
)

func run(text string, x, y float64) entity.PositionedTextRun {
	return entity.PositionedTextRun{Text: text, X: x, Y: y, Width: 10 * float64(len(text)), Height: 10}
}

func TestReconstruct_ReadingOrder(t *testing.T) {
	// Shuffled input; Y grows upward, so 700 is the top row.
	runs := []entity.PositionedTextRun{
		run("124.56", 200, 650),
		run("Total:", 50, 650),
		run("Power", 120, 700),
		run("Acme", 50, 700),
		run("Due", 50, 600),
		run("06/01/2023", 120, 600),
	}

	lines, text := Reconstruct(runs, DefaultYTolerance)
	require.Len(t, lines, 3)
	assert.Equal(t, "Acme Power\nTotal: 124.56\nDue 06/01/2023", text)
}

func TestReconstruct_ToleranceGroupsJitteredRuns(t *testing.T) {
	// Baseline jitter below the tolerance keeps the runs on one line.
	runs := []entity.PositionedTextRun{
		run("c", 300, 498),
		run("a", 100, 500),
		run("b", 200, 502),
	}
	lines, text := Reconstruct(runs, 5)
	require.Len(t, lines, 1)
	assert.Equal(t, "a b c", text)

	// Shrinking the tolerance splits them.
	lines, _ = Reconstruct(runs, 1)
	assert.Len(t, lines, 3)
}

func TestReconstruct_RunningAverageAnchorsLine(t *testing.T) {
	// A slow vertical drift: every neighbour is within tolerance of the
	// previous run, but the running average stops the line from creeping.
	runs := []entity.PositionedTextRun{
		run("a", 0, 500),
		run("b", 10, 496),
		run("c", 20, 492),
		run("d", 30, 488),
	}
	lines, _ := Reconstruct(runs, 5)
	assert.Greater(t, len(lines), 1)
}

func TestReconstruct_Empty(t *testing.T) {
	lines, text := Reconstruct(nil, 5)
	assert.Nil(t, lines)
	assert.Empty(t, text)

	lines, text = Reconstruct([]entity.PositionedTextRun{run("   ", 0, 0)}, 5)
	assert.Nil(t, lines)
	assert.Empty(t, text)
}
