package sketch

// BoardOption configures a Board during creation.
//
// Example:
//
//	b := sketch.NewBoard(800, 600,
//		sketch.WithBackground(sketch.White),
//		sketch.WithHistoryLimit(64))
type BoardOption func(*boardOptions)

// boardOptions holds optional configuration for Board creation.
type boardOptions struct {
	background   RGBA
	historyLimit int
}

// defaultBoardOptions returns the default board options.
func defaultBoardOptions() boardOptions {
	return boardOptions{
		background:   White,
		historyLimit: 0, // unbounded
	}
}

// WithBackground sets the surface background color. The background is
// what Clear wipes to and what erasing reveals.
func WithBackground(c RGBA) BoardOption {
	return func(o *boardOptions) {
		o.background = c
	}
}

// WithHistoryLimit bounds the number of retained snapshots. Zero (the
// default) keeps the full session history.
func WithHistoryLimit(n int) BoardOption {
	return func(o *boardOptions) {
		o.historyLimit = n
	}
}
