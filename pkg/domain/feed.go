package domain

import "time"

// Feed represents a parsed image-of-the-day feed
type Feed struct {
	Title   string
	Entries []Entry // newest first, as published
}

// Entry represents a single feed item
type Entry struct {
	GUID      string
	Title     string
	Link      string
	Enclosure string // url of the first enclosure, empty if the item has none
	Published time.Time
}

// Current returns the newest entry, the first one in the feed
func (f *Feed) Current() (Entry, bool) {
	if f == nil || len(f.Entries) == 0 {
		return Entry{}, false
	}
	return f.Entries[0], true
}
