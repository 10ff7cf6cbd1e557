// Package layout clusters positioned text runs into reading-order lines.
package layout

import (
	"sort"
	"strings"

	"github.com/akaraszi/billscan/internal/entity"
)

// DefaultYTolerance is the vertical distance (user-space units) within which
// two runs are considered to sit on the same line.
const DefaultYTolerance = 5.0

// Reconstruct orders a page's runs into lines and a reading-order string.
// PDF user space has the origin at the bottom-left, so rows flow
// top-to-bottom in descending Y; ties within the tolerance resolve by X
// ascending. A single sort-and-sweep pass, O(n log n).
func Reconstruct(runs []entity.PositionedTextRun, tolerance float64) ([][]entity.PositionedTextRun, string) {
	if tolerance <= 0 {
		tolerance = DefaultYTolerance
	}
	if len(runs) == 0 {
		return nil, ""
	}

	sorted := make([]entity.PositionedTextRun, 0, len(runs))
	for _, r := range runs {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		sorted = append(sorted, r)
	}
	if len(sorted) == 0 {
		return nil, ""
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines [][]entity.PositionedTextRun
	current := []entity.PositionedTextRun{sorted[0]}
	avgY := sorted[0].Y

	for _, r := range sorted[1:] {
		if avgY-r.Y <= tolerance && r.Y-avgY <= tolerance {
			current = append(current, r)
			avgY += (r.Y - avgY) / float64(len(current))
			continue
		}
		lines = append(lines, finishLine(current))
		current = []entity.PositionedTextRun{r}
		avgY = r.Y
	}
	lines = append(lines, finishLine(current))

	parts := make([]string, len(lines))
	for i, line := range lines {
		texts := make([]string, len(line))
		for j, r := range line {
			texts[j] = strings.TrimSpace(r.Text)
		}
		parts[i] = strings.Join(texts, " ")
	}
	return lines, strings.Join(parts, "\n")
}

func finishLine(line []entity.PositionedTextRun) []entity.PositionedTextRun {
	sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })
	return line
}
