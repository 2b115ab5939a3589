package models

import "time"

type FileKind string

const (
	KindFile   FileKind = "file"
	KindFolder FileKind = "folder"
)

// FileRecord is a single file or folder of a desktop's virtual file system.
// The JSON layout matches what browser clients have always stored, so older
// exports decode without conversion. Size is the rune count of Content;
// browsers stored UTF-16 lengths, so sizes in legacy arrays are recomputed
// when they are migrated.
type FileRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       FileKind  `json:"type"`
	Content    string    `json:"content,omitempty"`
	ParentID   *string   `json:"parentId"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Size       int       `json:"size"`
	Extension  string    `json:"extension,omitempty"`
}

func (f FileRecord) IsFolder() bool {
	return f.Kind == KindFolder
}

func (f FileRecord) IsRoot() bool {
	return f.ParentID == nil
}
