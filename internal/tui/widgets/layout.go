package widgets

import "strings"

// Rows stacks widgets top to bottom. Height is shared by Ratios, or evenly
// when Ratios does not match Widgets.
type Rows struct {
	Widgets []Widget
	Ratios  []float64
}

func (r Rows) Render(width, height int) string {
	if len(r.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := share(height, len(r.Widgets), r.Ratios)
	blocks := make([]string, 0, len(r.Widgets))
	for i, w := range r.Widgets {
		if heights[i] == 0 {
			continue
		}
		blocks = append(blocks, FitHeight(w.Render(width, heights[i]), heights[i]))
	}
	return strings.Join(blocks, "\n")
}

// Columns places widgets side by side with Gap blank cells between them.
type Columns struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (c Columns) Render(width, height int) string {
	if len(c.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := max(0, c.Gap)
	widths := share(max(0, width-gap*(len(c.Widgets)-1)), len(c.Widgets), c.Ratios)
	cols := make([][]string, len(c.Widgets))
	for i, w := range c.Widgets {
		cols[i] = strings.Split(FitHeight(w.Render(max(1, widths[i]), height), height), "\n")
	}
	sep := strings.Repeat(" ", gap)
	lines := make([]string, height)
	cells := make([]string, len(cols))
	for y := range lines {
		for i, col := range cols {
			cells[i] = PadRight(col[y], widths[i])
		}
		lines[y] = strings.Join(cells, sep)
	}
	return strings.Join(lines, "\n")
}

// share splits total into n parts by ratio. Part boundaries are rounded from
// the running ratio sum, so the parts always add up to total.
func share(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = 1
		if len(ratios) == n && ratios[i] > 0 {
			weights[i] = ratios[i]
		}
		sum += weights[i]
	}
	out := make([]int, n)
	acc, prev := 0.0, 0
	for i, w := range weights {
		acc += w
		edge := int(float64(total)*acc/sum + 0.5)
		if i == n-1 {
			edge = total
		}
		out[i] = edge - prev
		prev = edge
	}
	return out
}
