package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
)

// ErrSnapshotDecode indicates a snapshot payload could not be decoded
// back into pixels. The surface keeps its last-good content when a
// restore fails with this error.
var ErrSnapshotDecode = errors.New("sketch: snapshot decode failed")

// Snapshot is an immutable capture of full surface pixel content plus
// the tool settings active at capture time. Snapshots are value
// objects; they are never mutated after creation.
type Snapshot struct {
	// ID identifies the snapshot in logs and diagnostics.
	ID string

	// PNG is the losslessly encoded full pixel content.
	PNG []byte

	// Width is the tool stroke width at capture time.
	Width int

	// Color is the tool color at capture time.
	Color RGBA

	// CapturedAt is the capture timestamp.
	CapturedAt time.Time
}

// CaptureSnapshot encodes the surface's current pixel content and
// records the tool settings alongside it.
func CaptureSnapshot(s *Surface, tool Tool) (Snapshot, error) {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return Snapshot{}, fmt.Errorf("capture snapshot: %w", err)
	}
	return Snapshot{
		ID:         uuid.NewString(),
		PNG:        buf.Bytes(),
		Width:      tool.Width,
		Color:      tool.Color,
		CapturedAt: time.Now(),
	}, nil
}

// Decode decodes the snapshot payload back into an image.
func (s Snapshot) Decode() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(s.PNG))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotDecode, s.ID, err)
	}
	return img, nil
}

// Thumbnail decodes the snapshot and scales it to the given dimensions,
// for history-strip style UIs.
func (s Snapshot) Thumbnail(width, height int) (image.Image, error) {
	src, err := s.Decode()
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
