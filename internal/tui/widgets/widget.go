package widgets

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Func adapts a render function.
type Func func(width, height int) string

func (f Func) Render(width, height int) string { return f(width, height) }
