package entities

import "time"

// MediaFile represents one media asset on disk. Files are never mutated in
// place; a rename replaces the identity.
type MediaFile struct {
	Filename     string    `json:"filename"`
	SizeBytes    int64     `json:"size_bytes"`
	ModifiedTime time.Time `json:"modified_time"`
}
