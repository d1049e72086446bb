package sketch

import (
	"errors"
	"testing"
)

func TestCaptureSnapshot(t *testing.T) {
	surface := NewSurface(16, 12, White)
	tool := NewTool()
	tool.SetWidth(7)
	tool.SetColor(Blue)

	snap, err := CaptureSnapshot(surface, *tool)
	if err != nil {
		t.Fatalf("CaptureSnapshot: %v", err)
	}

	if snap.ID == "" {
		t.Error("snapshot ID is empty")
	}
	if snap.Width != 7 {
		t.Errorf("snapshot Width = %d, want 7", snap.Width)
	}
	if snap.Color != Blue {
		t.Errorf("snapshot Color = %v, want %v", snap.Color, Blue)
	}
	if snap.CapturedAt.IsZero() {
		t.Error("snapshot CapturedAt is zero")
	}

	img, err := snap.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("decoded bounds = %dx%d, want 16x12", bounds.Dx(), bounds.Dy())
	}
}

func TestSnapshot_DecodeRoundTrip(t *testing.T) {
	surface := NewSurface(32, 32, White)
	surface.DrawSegment(Pt(4, 16), Pt(28, 16), 6, Red)
	want := surface.Image()

	snap, err := CaptureSnapshot(surface, *NewTool())
	if err != nil {
		t.Fatalf("CaptureSnapshot: %v", err)
	}

	img, err := snap.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	restored := NewSurface(32, 32, White)
	restored.SetImage(img)
	got := restored.Image()

	for i := range want.Pix {
		if want.Pix[i] != got.Pix[i] {
			t.Fatalf("pixel byte %d differs after round trip: %d != %d",
				i, want.Pix[i], got.Pix[i])
		}
	}
}

func TestSnapshot_DecodeCorruptPayload(t *testing.T) {
	snap := Snapshot{ID: "corrupt", PNG: []byte("definitely not a png")}

	_, err := snap.Decode()
	if err == nil {
		t.Fatal("Decode of corrupt payload succeeded")
	}
	if !errors.Is(err, ErrSnapshotDecode) {
		t.Errorf("error = %v, want errors.Is(err, ErrSnapshotDecode)", err)
	}
}

func TestSnapshot_Thumbnail(t *testing.T) {
	surface := NewSurface(64, 48, White)
	snap, err := CaptureSnapshot(surface, *NewTool())
	if err != nil {
		t.Fatalf("CaptureSnapshot: %v", err)
	}

	thumb, err := snap.Thumbnail(16, 12)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	bounds := thumb.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 12 {
		t.Errorf("thumbnail bounds = %dx%d, want 16x12", bounds.Dx(), bounds.Dy())
	}

	if _, err := (Snapshot{ID: "bad", PNG: nil}).Thumbnail(8, 8); err == nil {
		t.Error("Thumbnail of an undecodable snapshot succeeded")
	}
}
