// Package entities defines the domain entities of the note store.
package entities

import (
	"errors"
	"time"
)

// ErrNoteNotFound is returned when no note matches the requested id.
var ErrNoteNotFound = errors.New("note not found")

// Note is a note aggregate with its folder reference and embedded tags.
type Note struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	FolderID   *int64    `json:"folder_id"`
	FolderName *string   `json:"folder_name,omitempty"`
	Created    time.Time `json:"created"`
	Tags       []Tag     `json:"tags"`
}

// NoteDraft carries the writable note fields for create and update. TagIDs
// is the full replacement tag set; nil and empty both mean "no tags".
type NoteDraft struct {
	Title    string
	Content  string
	FolderID *int64
	TagIDs   []int64
}

// NoteFilter narrows note listings. Supplied fields combine with AND.
type NoteFilter struct {
	SearchTerm string
	FolderID   *int64
	TagID      *int64
}
