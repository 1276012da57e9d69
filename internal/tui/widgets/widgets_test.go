package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestColumnsRespectRatios(t *testing.T) {
	h := Columns{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(21, 1)
	if got := strings.Index(out, "B"); got != 16 {
		t.Fatalf("expected right column at 16, got %d in %q", got, out)
	}
}

func TestRowsShareHeightByRatio(t *testing.T) {
	r := Rows{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Ratios: []float64{1, 2}}
	out := r.Render(10, 6)
	if out != "top\n\nbottom\n\n\n" {
		t.Fatalf("unexpected stack %q", out)
	}
}

func TestColumnsFillEveryLine(t *testing.T) {
	out := Columns{Widgets: []Widget{fixedWidget{"a\nb"}, fixedWidget{"c"}}, Gap: 2}.Render(12, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 12 {
			t.Fatalf("line %d has width %d: %q", i, w, l)
		}
	}
	if lines[0] != "a      c    " || lines[1] != "b           " {
		t.Fatalf("unexpected layout %q", lines)
	}
}

func TestShareAddsUpToTotal(t *testing.T) {
	got := share(10, 3, nil)
	if got[0] != 3 || got[1] != 4 || got[2] != 3 {
		t.Fatalf("unexpected even split %v", got)
	}
	got = share(33, 2, []float64{0.4, 0.6})
	if got[0] != 13 || got[1] != 20 {
		t.Fatalf("unexpected ratio split %v", got)
	}
	got = share(7, 2, []float64{1})
	if got[0]+got[1] != 7 {
		t.Fatalf("mismatched ratios must still cover total, got %v", got)
	}
}

func TestPadRightAndFitHeight(t *testing.T) {
	if got := PadRight("\x1b[1mlonger\x1b[0m", 4); ansi.Strip(got) != "long" {
		t.Fatalf("truncate: %q", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("pad: %q", got)
	}
	if got := FitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("cut: %q", got)
	}
	if got := FitHeight("a", 3); got != "a\n\n" {
		t.Fatalf("extend: %q", got)
	}
}

func TestPaneFillsBox(t *testing.T) {
	out := Pane{Title: "Scene", Content: "line one\nline two"}.Render(20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("line %d has width %d", i, w)
		}
	}
	if !strings.Contains(lines[0], "Scene") || !strings.Contains(lines[2], "line two") {
		t.Fatalf("missing title or content:\n%s", out)
	}
}

func TestPaneRendersBody(t *testing.T) {
	out := Pane{Title: "T", Body: Func(func(int, int) string { return "from body" })}.Render(20, 3)
	if !strings.Contains(out, "from body") {
		t.Fatalf("body not rendered:\n%s", out)
	}
}

func TestListScrollsToCursor(t *testing.T) {
	items := make([]ListItem, 10)
	for i := range items {
		items[i] = ListItem{Label: string(rune('a' + i))}
	}
	out := ansi.Strip(List{Items: items, Cursor: 7, Focused: true}.Render(6, 3))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 || strings.TrimSpace(lines[2]) != "h" || strings.TrimSpace(lines[0]) != "f" {
		t.Fatalf("unexpected window %q", lines)
	}
}

func TestListEmpty(t *testing.T) {
	out := ansi.Strip(List{Empty: "nothing"}.Render(10, 2))
	if strings.TrimSpace(out) != "nothing" {
		t.Fatalf("unexpected %q", out)
	}
}

func TestListIndentsTree(t *testing.T) {
	out := ansi.Strip(List{Items: []ListItem{{Label: "root"}, {Label: "child", Depth: 1, Active: true}}}.Render(20, 2))
	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[1], "●   child") {
		t.Fatalf("unexpected tree row %q", lines[1])
	}
}
