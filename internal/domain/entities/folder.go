package entities

import "errors"

// ErrFolderNotFound is returned when no folder matches the requested id.
var ErrFolderNotFound = errors.New("folder not found")

// Folder groups notes. Notes reference it weakly by id.
type Folder struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
