package sketch

// penState tracks whether a stroke is in progress.
type penState int

const (
	penIdle penState = iota
	penDrawing
)

// Pen rasterizes a single continuous stroke from pointer-down to
// pointer-up. It is an explicit state machine over {idle, drawing}
// holding only the last recorded point; width and color are read from
// the live Tool at each segment draw, so mid-stroke tool changes apply
// to segments drawn after the change.
type Pen struct {
	state   penState
	last    Point
	surface *Surface
	tool    *Tool
}

// NewPen creates a pen drawing onto surface with the given live tool.
func NewPen(surface *Surface, tool *Tool) *Pen {
	return &Pen{surface: surface, tool: tool}
}

// Drawing reports whether a stroke is in progress.
func (p *Pen) Drawing() bool {
	return p.state == penDrawing
}

// Begin starts a new stroke at pt. No pixels change: the first
// committed segment requires a second point.
func (p *Pen) Begin(pt Point) {
	p.state = penDrawing
	p.last = pt
}

// Continue extends the stroke to pt, drawing a round-capped segment
// from the last recorded point. Calling Continue while idle is a
// silent no-op; pointer-move events fire outside active strokes.
func (p *Pen) Continue(pt Point) {
	if p.state != penDrawing {
		return
	}
	p.surface.DrawSegment(p.last, pt, float64(p.tool.Width), p.tool.Color)
	p.last = pt
}

// End finishes the stroke and reports whether one was in progress.
// It returns true exactly once per stroke, so a caller committing a
// snapshot on true never commits duplicates when both pointer-up and
// pointer-leave fire.
func (p *Pen) End() bool {
	wasDrawing := p.state == penDrawing
	p.state = penIdle
	return wasDrawing
}
