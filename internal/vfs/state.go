package vfs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"serwer-pulpitu/internal/models"
)

const stateVersion = 1

// persistedState is the envelope written under StorageKey. Version 0 is the
// bare JSON array browsers used to store.
type persistedState struct {
	Version int                 `json:"version"`
	Records []models.FileRecord `json:"records"`
}

func encodeState(records []models.FileRecord) ([]byte, error) {
	if records == nil {
		records = []models.FileRecord{}
	}
	return json.Marshal(persistedState{Version: stateVersion, Records: records})
}

// decodeState parses and validates a stored blob. migrated reports that the
// blob used an older layout and should be rewritten.
func decodeState(data []byte) (records []models.FileRecord, migrated bool, err error) {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrMalformedState, err)
		}
		// Browsers counted sizes in UTF-16 units; sizes here are rune counts.
		for i := range records {
			if !records[i].IsFolder() {
				records[i].Size = contentSize(records[i].Content)
			}
		}
		migrated = true
	} else {
		var state persistedState
		if err := json.Unmarshal(trimmed, &state); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrMalformedState, err)
		}
		if state.Version != stateVersion {
			return nil, false, fmt.Errorf("%w: %w %d", ErrMalformedState, ErrUnknownVersion, state.Version)
		}
		records = state.Records
	}

	if err := validate(records); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrMalformedState, err)
	}
	return records, migrated, nil
}

// validate checks the tree invariants: unique ids, exactly one root folder,
// every parent present and a folder, and every record reachable from the root.
func validate(records []models.FileRecord) error {
	byID := make(map[string]*models.FileRecord, len(records))
	children := make(map[string][]string)
	rootID := ""
	roots := 0

	for i := range records {
		r := &records[i]
		if r.ID == "" {
			return fmt.Errorf("%w: empty id at index %d", ErrDuplicateID, i)
		}
		if _, exists := byID[r.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		byID[r.ID] = r
		if r.IsRoot() {
			roots++
			rootID = r.ID
			continue
		}
		children[*r.ParentID] = append(children[*r.ParentID], r.ID)
	}

	if roots != 1 {
		return fmt.Errorf("%w: found %d", ErrRootCount, roots)
	}
	if !byID[rootID].IsFolder() {
		return fmt.Errorf("%w: root %s is a file", ErrRootCount, rootID)
	}

	for _, r := range records {
		if r.IsRoot() {
			continue
		}
		parent, ok := byID[*r.ParentID]
		if !ok {
			return fmt.Errorf("%w: %s -> %s", ErrOrphanRecord, r.ID, *r.ParentID)
		}
		if !parent.IsFolder() {
			return fmt.Errorf("%w: %s -> %s", ErrNotAFolder, r.ID, parent.ID)
		}
	}

	// With every parent present, anything the root cannot reach sits on a cycle.
	reached := 1
	queue := []string{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			reached++
			queue = append(queue, child)
		}
	}
	if reached != len(records) {
		return fmt.Errorf("%w: %d records unreachable from root", ErrCycle, len(records)-reached)
	}

	return nil
}
