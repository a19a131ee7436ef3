package entities

import "errors"

// ErrTagNotFound is returned when no tag matches the requested id.
var ErrTagNotFound = errors.New("tag not found")

// Tag labels notes through the notes_tags join table.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
