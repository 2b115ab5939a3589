package vfs

import (
	"time"

	"serwer-pulpitu/internal/models"
)

const RootID = "root"

const readmeContent = "Welcome to Urbanshade OS!\n\nThis is your virtual file system. You can create, edit, and delete files here.\n\nTry creating a new document in the Documents folder!"

const classifiedContent = "[REDACTED]\n\nProject URBANSHADE - Level 5 Clearance Required\n\nSubject: Containment Breach Protocol\n\nIf you're reading this, you've accessed restricted files.\nReport to Section Chief immediately.\n\n- Dr. ████████"

// Seed returns the records a brand new desktop starts with.
func Seed(now time.Time) []models.FileRecord {
	folder := func(id, name string, parent *string) models.FileRecord {
		return models.FileRecord{
			ID:         id,
			Name:       name,
			Kind:       models.KindFolder,
			ParentID:   parent,
			CreatedAt:  now,
			ModifiedAt: now,
		}
	}
	file := func(id, name, content, parent string) models.FileRecord {
		return models.FileRecord{
			ID:         id,
			Name:       name,
			Kind:       models.KindFile,
			Content:    content,
			ParentID:   strPtr(parent),
			CreatedAt:  now,
			ModifiedAt: now,
			Size:       contentSize(content),
			Extension:  extensionOf(name),
		}
	}

	return []models.FileRecord{
		folder(RootID, "Root", nil),
		folder("documents", "Documents", strPtr(RootID)),
		folder("downloads", "Downloads", strPtr(RootID)),
		folder("pictures", "Pictures", strPtr(RootID)),
		folder("system", "System", strPtr(RootID)),
		file("readme", "README.txt", readmeContent, "documents"),
		file("secrets", "CLASSIFIED.txt", classifiedContent, "system"),
	}
}

func strPtr(s string) *string {
	return &s
}
