package sketch

// Pen width bounds, matching the range a host slider exposes.
const (
	MinWidth = 1
	MaxWidth = 20
)

// DefaultWidth is the pen width of a fresh tool.
const DefaultWidth = 3

// Tool holds the live pen settings: stroke width in surface pixels and
// pen color. The stroke renderer reads the tool at segment-draw time,
// so changes made mid-stroke affect subsequent segments only.
//
// Exactly one Tool exists per Board; undo and redo overwrite it with
// the settings recorded in the target snapshot.
type Tool struct {
	Width int
	Color RGBA
}

// NewTool creates a tool with the default width and black color.
func NewTool() *Tool {
	return &Tool{Width: DefaultWidth, Color: Black}
}

// SetWidth sets the stroke width, clamped to [MinWidth, MaxWidth].
func (t *Tool) SetWidth(w int) {
	if w < MinWidth {
		w = MinWidth
	}
	if w > MaxWidth {
		w = MaxWidth
	}
	t.Width = w
}

// SetColor sets the pen color.
func (t *Tool) SetColor(c RGBA) {
	t.Color = c
}

// SetHexColor sets the pen color from a hex string ("#RRGGBB" etc).
func (t *Tool) SetHexColor(hex string) {
	t.Color = Hex(hex)
}

// restoreFrom overwrites the tool with the settings captured in a
// snapshot. Called on undo/redo.
func (t *Tool) restoreFrom(s Snapshot) {
	t.Width = s.Width
	t.Color = s.Color
}
