package review

// Outline records which review sections are collapsed. The zero value has
// every section expanded.
type Outline struct {
	collapsed map[string]bool
}

// NewOutline returns an outline with the given sections collapsed.
func NewOutline(collapsed ...string) Outline {
	o := Outline{collapsed: make(map[string]bool)}
	for _, k := range collapsed {
		o.collapsed[k] = true
	}
	return o
}

// Expanded reports whether the section is shown in full.
func (o Outline) Expanded(key string) bool {
	return !o.collapsed[key]
}

// Toggle flips a section between expanded and collapsed.
func (o *Outline) Toggle(key string) {
	if o.collapsed == nil {
		o.collapsed = make(map[string]bool)
	}
	if o.collapsed[key] {
		delete(o.collapsed, key)
		return
	}
	o.collapsed[key] = true
}

// Collapsed lists the collapsed section keys in display order.
func (o Outline) Collapsed() []string {
	var out []string
	for _, k := range SectionKeys {
		if o.collapsed[k] {
			out = append(out, k)
		}
	}
	return out
}
