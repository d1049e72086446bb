package sketch

import (
	"image"
	"sync"
	"sync/atomic"
)

// restorer applies snapshot pixel content back to the surface.
//
// Decoding a snapshot is the one asynchronous boundary in the system:
// it runs in a goroutine per request. Every request is tagged with a
// monotonically increasing sequence number; a completion applies its
// pixels only while its tag is still the latest issued, so a stale
// decode can never overwrite a newer state no matter how late it
// finishes. applyMu serializes the check-and-apply.
type restorer struct {
	surface *Surface
	seq     atomic.Uint64
	applyMu sync.Mutex
	wg      sync.WaitGroup

	// decode converts a snapshot payload to pixels. Overridable in
	// tests to simulate slow or failing decodes.
	decode func(Snapshot) (image.Image, error)

	// onApply is invoked after pixels land on the surface, so a host
	// UI can repaint. May be nil.
	onApply func()
}

func newRestorer(surface *Surface) *restorer {
	return &restorer{
		surface: surface,
		decode:  Snapshot.Decode,
	}
}

// restore schedules snap's pixels to replace the surface content.
func (r *restorer) restore(snap Snapshot) {
	tag := r.seq.Add(1)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		img, err := r.decode(snap)
		if err != nil {
			// Leave the surface in its last-good state.
			Logger().Warn("snapshot restore failed",
				"snapshot", snap.ID, "err", err)
			return
		}

		r.applyMu.Lock()
		defer r.applyMu.Unlock()
		if r.seq.Load() != tag {
			Logger().Debug("stale snapshot restore discarded",
				"snapshot", snap.ID)
			return
		}
		r.surface.SetImage(img)
		if r.onApply != nil {
			r.onApply()
		}
	}()
}

// invalidate supersedes any in-flight restore without issuing a new
// one. Called when a clear or a fresh commit makes pending renders
// stale.
func (r *restorer) invalidate() {
	r.seq.Add(1)
}

// wait blocks until all in-flight restores have completed or been
// discarded.
func (r *restorer) wait() {
	r.wg.Wait()
}
