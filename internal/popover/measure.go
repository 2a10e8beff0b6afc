package popover

// StyleHints describe how content will be drawn. A zero Width lets the
// content pick its natural width.
type StyleHints struct {
	Width    int
	PaddingX int
	PaddingY int
	Border   bool
}

// Measurer reports the size content takes once rendered by the host UI.
type Measurer interface {
	MeasureRenderedSize(content string, hints StyleHints) Size
}

// MeasureFunc adapts a plain function to Measurer.
type MeasureFunc func(content string, hints StyleHints) Size

func (f MeasureFunc) MeasureRenderedSize(content string, hints StyleHints) Size {
	return f(content, hints)
}
