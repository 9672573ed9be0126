package palette

// ElementSnapshot is a frozen element: its layout flag and computed style.
type ElementSnapshot struct {
	Visible bool  `json:"rendered"`
	Style   Style `json:"style"`
}

func (e ElementSnapshot) Rendered() bool       { return e.Visible }
func (e ElementSnapshot) ComputedStyle() Style { return e.Style }

// Snapshot is a Document captured elsewhere and shipped across a boundary.
type Snapshot []ElementSnapshot

func (s Snapshot) Elements() []Element {
	elements := make([]Element, len(s))
	for i := range s {
		elements[i] = s[i]
	}
	return elements
}
