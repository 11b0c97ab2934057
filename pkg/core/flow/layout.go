package flow

// Default spacing between elements, in pixels.
const (
	DefaultHorizontalSpacing = 5
	DefaultVerticalSpacing   = 5
)

// Size is a measured width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// Measurable is anything that can report its size under constraints.
type Measurable interface {
	Measure(c Constraints) Size
}

// Fixed is a Measurable with an intrinsic size. It honors exact and at-most
// constraints and otherwise keeps its own size.
type Fixed Size

// Measure implements Measurable.
func (f Fixed) Measure(c Constraints) Size {
	return Size{
		Width:  c.Width.Resolve(f.Width),
		Height: c.Height.Resolve(f.Height),
	}
}

// Child is one element handed to [Layout.Measure].
type Child struct {
	ID           string
	LayoutWidth  Dimension  // fixed size, MatchParent or WrapContent
	LayoutHeight Dimension  // fixed size, MatchParent or WrapContent
	Content      Measurable // nil measures as zero size
	Gone         bool       // hidden children take no space and get no placement
}

// Padding is the inset between the container frame and its content.
type Padding struct {
	Left   int `json:"left" yaml:"left" toml:"left"`
	Top    int `json:"top" yaml:"top" toml:"top"`
	Right  int `json:"right" yaml:"right" toml:"right"`
	Bottom int `json:"bottom" yaml:"bottom" toml:"bottom"`
}

// Horizontal returns left plus right padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns top plus bottom padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Layout is a flow container: spacing and padding applied around [Pack].
type Layout struct {
	HorizontalSpacing int
	VerticalSpacing   int
	Padding           Padding
}

// Option configures a Layout.
type Option func(*Layout)

// WithSpacing sets horizontal and vertical spacing between elements.
func WithSpacing(h, v int) Option {
	return func(l *Layout) {
		l.HorizontalSpacing = h
		l.VerticalSpacing = v
	}
}

// WithPadding sets the container padding.
func WithPadding(p Padding) Option {
	return func(l *Layout) { l.Padding = p }
}

// New returns a Layout with default spacing and no padding.
func New(opts ...Option) Layout {
	l := Layout{
		HorizontalSpacing: DefaultHorizontalSpacing,
		VerticalSpacing:   DefaultVerticalSpacing,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Measurement is the frozen result of one measure pass. Its [Measurement.Place]
// method replays exactly the rows computed here.
type Measurement struct {
	Result      Result
	Constraints Constraints
	Width       int // frame width reported to the host, padding included
	Height      int // frame height reported to the host, padding included

	layout Layout
}

// Measure packs the visible children under c.
//
// Padding is subtracted from the constraint sizes before packing and added
// back to the content size afterwards. An exact axis reports the constraint
// size; any other mode reports padding plus content.
func (l Layout) Measure(children []Child, c Constraints) Measurement {
	widthSize := c.Width.Size - l.Padding.Horizontal()
	heightSize := c.Height.Size - l.Padding.Vertical()

	elements := make([]Element, 0, len(children))
	for _, ch := range children {
		if ch.Gone {
			continue
		}
		cc := Constraints{
			Width:  ChildConstraint(ch.LayoutWidth, widthSize, c.Width.Mode),
			Height: ChildConstraint(ch.LayoutHeight, heightSize, c.Height.Mode),
		}
		var size Size
		if ch.Content != nil {
			size = ch.Content.Measure(cc)
		}
		elements = append(elements, Element{ID: ch.ID, Width: size.Width, Height: size.Height})
	}

	res := Pack(elements, widthSize, c.Width.Bounded(), l.HorizontalSpacing, l.VerticalSpacing)

	m := Measurement{
		Result:      res,
		Constraints: c,
		Width:       l.Padding.Horizontal() + res.Width,
		Height:      l.Padding.Vertical() + res.Height,
		layout:      l,
	}
	if c.Width.Mode == Exact {
		m.Width = c.Width.Size
	}
	if c.Height.Mode == Exact {
		m.Height = c.Height.Size
	}
	return m
}

// Layout returns the container settings the measurement was taken with.
func (m Measurement) Layout() Layout { return m.layout }

// Place assigns origins to every measured element, starting at the top-left
// padding corner.
func (m Measurement) Place() Placements {
	l := m.layout
	return Place(m.Result, l.Padding.Left, l.Padding.Top, l.HorizontalSpacing, l.VerticalSpacing)
}
