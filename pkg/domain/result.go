package domain

// Result describes a successful update cycle
type Result struct {
	FeedURL  string
	ImageURL string // resolved, after scheme normalization
	Path     string // file the image was written to
	Size     int

	// WallpaperErr is the error returned by the wallpaper setter, if any.
	// it never fails the cycle.
	WallpaperErr error
}
