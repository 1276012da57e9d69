package tui

import (
	"math"
	"slices"
	"strings"

	"github.com/jask/scenescope/internal/bridge"
	"github.com/jask/scenescope/internal/enums"
	"github.com/jask/scenescope/internal/params"
)

// paramRow is one property line of the parameter inspector. A vec3
// property spans three rows, one per Axis.
type paramRow struct {
	Group       string
	Prop        params.Prop
	Axis        int
	Raw         any
	Text        string
	Err         error
	Options     []enums.Option
	Constrained bool
}

// buildParamRows lays out the descriptor groups for the inspected entity.
// Integrity errors from the enum tables are kept on the row, not dropped.
func buildParamRows(set bridge.EntitySet, id string, r *enums.Resolver) []paramRow {
	e, ok := set[id]
	if !ok {
		return nil
	}
	var rows []paramRow
	for _, g := range params.ForType(e.Type) {
		for _, p := range g.Props {
			row := paramRow{Group: g.Name, Prop: p, Raw: e.Props[p.Prop]}
			switch p.Kind {
			case params.KindVec3:
				rows = append(rows, vec3Rows(row)...)
				continue
			case params.KindEntity:
				row.Text = entityLabel(set, row.Raw)
			case params.KindEnum:
				opts, ok, err := r.ResolveOptions(p.EnumType)
				row.Options, row.Constrained, row.Err = opts, ok, err
				if err == nil {
					row.Text, row.Err = params.Format(p, row.Raw, r)
				}
			default:
				row.Text, row.Err = params.Format(p, row.Raw, r)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

var axes = [3]string{"x", "y", "z"}

func vec3Rows(row paramRow) []paramRow {
	raw := row.Raw
	if raw == nil {
		raw = row.Prop.Default
	}
	vec := params.Vec3(raw)
	component := params.Prop{Kind: params.KindNumber, Precision: row.Prop.Precision}
	out := make([]paramRow, len(axes))
	for i := range axes {
		r := row
		r.Axis = i
		r.Text, r.Err = params.Format(component, vec[i], nil)
		out[i] = r
	}
	return out
}

// label is the row title; vec3 rows name their axis.
func (row paramRow) label() string {
	if row.Prop.Kind == params.KindVec3 {
		return row.Prop.Name + " " + axes[row.Axis]
	}
	return row.Prop.Name
}

func entityLabel(set bridge.EntitySet, v any) string {
	id, ok := v.(string)
	if !ok || id == "" {
		return "-"
	}
	if dep, ok := set[id]; ok {
		return bridge.EntityRef{UUID: dep.UUID, Name: dep.Name, Type: dep.Type}.Label()
	}
	return id
}

// dependencies lists the entities in set other than id, sorted by label.
func dependencies(set bridge.EntitySet, id string) []bridge.EntityRef {
	out := make([]bridge.EntityRef, 0, len(set))
	for k, e := range set {
		if k == id {
			continue
		}
		out = append(out, bridge.EntityRef{UUID: e.UUID, Name: e.Name, Type: e.Type})
	}
	slices.SortFunc(out, func(a, b bridge.EntityRef) int { return strings.Compare(a.Label(), b.Label()) })
	return out
}

// edit is a property change the inspector wants to send.
type edit struct {
	Property string
	Value    any
}

// adjust computes the new value of an enum, number or vec3 row moved by
// delta steps. A vec3 edit sends the whole vector with one axis moved. ok is
// false for rows that cannot be stepped.
func (row paramRow) adjust(delta int) (edit, bool) {
	switch row.Prop.Kind {
	case params.KindEnum:
		if row.Err != nil {
			return edit{}, false
		}
		if !row.Constrained {
			n, _ := params.AsInt(row.Raw)
			return edit{Property: row.Prop.Prop, Value: n + delta}, true
		}
		var current *int
		if n, ok := params.AsInt(row.Raw); ok {
			current = &n
		}
		var out edit
		sel := enums.NewSelector(row.Options, current, func(v int) {
			out = edit{Property: row.Prop.Prop, Value: v}
		})
		if !sel.Cycle(delta) {
			return edit{}, false
		}
		return out, true
	case params.KindNumber:
		f, ok := row.Raw.(float64)
		if !ok {
			f, _ = row.Prop.Default.(float64)
		}
		return edit{Property: row.Prop.Prop, Value: row.step(f, delta)}, true
	case params.KindVec3:
		raw := row.Raw
		if raw == nil {
			raw = row.Prop.Default
		}
		vec := params.Vec3(raw)
		vec[row.Axis] = row.step(vec[row.Axis], delta)
		return edit{Property: row.Prop.Prop, Value: []any{vec[0], vec[1], vec[2]}}, true
	default:
		return edit{}, false
	}
}

// step moves v by delta steps and rounds to the row's precision.
func (row paramRow) step(v float64, delta int) float64 {
	step := row.Prop.Step
	if step == 0 {
		step = 1
	}
	next := v + float64(delta)*step
	if row.Prop.Precision > 0 {
		scale := math.Pow(10, float64(row.Prop.Precision))
		next = math.Round(next*scale) / scale
	}
	return next
}

// toggle flips a boolean row.
func (row paramRow) toggle() (edit, bool) {
	if row.Prop.Kind != params.KindBoolean {
		return edit{}, false
	}
	cur, ok := row.Raw.(bool)
	if !ok {
		cur, _ = row.Prop.Default.(bool)
	}
	return edit{Property: row.Prop.Prop, Value: !cur}, true
}
