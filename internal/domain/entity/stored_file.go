package entity

import "time"

// StoredFile describes one blob in the storage bucket, as returned by a
// prefix listing of a client's document folder.
type StoredFile struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
