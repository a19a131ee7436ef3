package postgres

import (
	"time"

	"notekeeper/internal/domain/entities"
)

// noteRow is one row of the notes join stream: the core note columns plus at
// most one tag pairing. Tag columns are null when the note has no tags.
type noteRow struct {
	ID         int64
	Title      string
	Content    *string
	FolderID   *int64
	FolderName *string
	Created    time.Time
	TagID      *int64
	TagName    *string
}

// hydrateNotes collapses a flat join stream into one aggregate per distinct
// note id, in first-occurrence order. Note fields come from the first row
// seen for an id; later rows only contribute tag pairings. A tag is appended
// only when both its id and name are non-null, so a note whose rows all
// carry null tag columns ends up with an empty (never nil) tag list.
func hydrateNotes(rows []noteRow) []*entities.Note {
	hydrated := make([]*entities.Note, 0, len(rows))
	lookup := make(map[int64]*entities.Note, len(rows))

	for _, row := range rows {
		note, seen := lookup[row.ID]
		if !seen {
			note = &entities.Note{
				ID:         row.ID,
				Title:      row.Title,
				FolderID:   row.FolderID,
				FolderName: row.FolderName,
				Created:    row.Created,
				Tags:       []entities.Tag{},
			}
			if row.Content != nil {
				note.Content = *row.Content
			}
			lookup[row.ID] = note
			hydrated = append(hydrated, note)
		}

		if row.TagID != nil && row.TagName != nil {
			note.Tags = append(note.Tags, entities.Tag{ID: *row.TagID, Name: *row.TagName})
		}
	}

	return hydrated
}
