package enums

// Selector is the state of one enumerated input control.
type Selector struct {
	options  []Option
	value    *int
	onChange func(int)
}

// NewSelector builds a control over options. current is the entity's value,
// nil when unknown. onChange receives every accepted selection.
func NewSelector(options []Option, current *int, onChange func(int)) *Selector {
	s := &Selector{options: options, onChange: onChange}
	if current != nil {
		v := *current
		s.value = &v
	}
	return s
}

func (s *Selector) Options() []Option { return s.options }

// Index is the highlighted option: the first one when no value is known,
// otherwise the option matching the value, or -1.
func (s *Selector) Index() int {
	if len(s.options) == 0 {
		return -1
	}
	if s.value == nil {
		return 0
	}
	for i, o := range s.options {
		if o.Value == *s.value {
			return i
		}
	}
	return -1
}

// Value returns the current value, if any.
func (s *Selector) Value() (int, bool) {
	if s.value == nil {
		return 0, false
	}
	return *s.value, true
}

// Select applies candidate and emits a change. A nil candidate has no
// numeric value and is ignored.
func (s *Selector) Select(candidate *int) bool {
	if candidate == nil {
		return false
	}
	v := *candidate
	s.value = &v
	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}

// Cycle selects the option delta steps from the current one, wrapping.
func (s *Selector) Cycle(delta int) bool {
	n := len(s.options)
	if n == 0 {
		return false
	}
	idx := s.Index()
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	v := s.options[idx].Value
	return s.Select(&v)
}
