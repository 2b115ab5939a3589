// Package vfs implements the virtual file store of a desktop: a tree of
// files and folders kept in memory and written through to a kv.Store after
// every mutation.
//
// Records live in an arena keyed by id. A parent->children index, ordered by
// insertion, answers child and descendant queries without scanning the whole
// collection.
package vfs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"

	"github.com/jaevor/go-nanoid"
)

const StorageKey = "virtual_filesystem"

// Notifier receives short user-facing messages about completed operations.
type Notifier interface {
	Notify(ctx context.Context, message string, kind models.NotificationKind)
}

type EventType string

const (
	EventFileCreated   EventType = "file_created"
	EventFolderCreated EventType = "folder_created"
	EventFileUpdated   EventType = "file_updated"
	EventFileRenamed   EventType = "file_renamed"
	EventFileMoved     EventType = "file_moved"
	EventFileDeleted   EventType = "file_deleted"
	EventReloaded      EventType = "filesystem_reloaded"
)

// Event describes a committed change. Record is the record after the change;
// for deletions it is the deleted record and DeletedIDs holds the whole closure.
type Event struct {
	Type       EventType          `json:"event_type"`
	Record     *models.FileRecord `json:"record,omitempty"`
	DeletedIDs []string           `json:"deleted_ids,omitempty"`
}

type Observer func(Event)

type Option func(*Store)

func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// WithReadOnly opens the store without ever writing to the backend. A missing
// state is reported as kv.ErrNotFound instead of being seeded, malformed state
// is an error, legacy layouts are migrated in memory only and every mutation
// fails with ErrReadOnly.
func WithReadOnly() Option {
	return func(s *Store) { s.readOnly = true }
}

type Store struct {
	mu sync.RWMutex

	backend  kv.Store
	notifier Notifier
	observer Observer
	now      func() time.Time
	newID    func() string
	readOnly bool

	records  map[string]*models.FileRecord
	seq      map[string]uint64
	nextSeq  uint64
	order    []string
	children map[string][]string
	rootID   string
}

// New loads the file system from backend, seeding and persisting the default
// tree when nothing is stored yet.
func New(ctx context.Context, backend kv.Store, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.newID == nil {
		gen, err := nanoid.Standard(21)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
		}
		s.newID = gen
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory tree with what the backend currently holds.
func (s *Store) Reload(ctx context.Context) error {
	if err := s.load(ctx); err != nil {
		return err
	}
	s.publish(Event{Type: EventReloaded})
	return nil
}

func (s *Store) load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []models.FileRecord
	persist := false

	data, err := s.backend.Load(ctx, StorageKey)
	switch {
	case errors.Is(err, kv.ErrNotFound) && s.readOnly:
		return fmt.Errorf("no file system state stored: %w", err)
	case errors.Is(err, kv.ErrNotFound):
		records = Seed(s.now())
		persist = true
	case err != nil:
		return fmt.Errorf("failed to load file system state: %w", err)
	default:
		var migrated bool
		records, migrated, err = decodeState(data)
		if err != nil && s.readOnly {
			return err
		}
		if err != nil {
			log.Printf("WARN: %v; keeping a copy under %q and starting from the default tree", err, StorageKey+".corrupt")
			loadFallbacks.Inc()
			if saveErr := s.backend.Save(ctx, StorageKey+".corrupt", data); saveErr != nil {
				log.Printf("ERROR: Failed to keep a copy of the malformed state: %v", saveErr)
			}
			records = Seed(s.now())
			persist = true
		} else if migrated {
			log.Printf("Migrating file system state to version %d", stateVersion)
			persist = true
		}
	}

	if persist && !s.readOnly {
		if err := s.persist(ctx, records); err != nil {
			return err
		}
	}

	s.install(records)
	return nil
}

func (s *Store) install(records []models.FileRecord) {
	s.records = make(map[string]*models.FileRecord, len(records))
	s.seq = make(map[string]uint64, len(records))
	s.children = make(map[string][]string)
	s.order = make([]string, 0, len(records))
	s.nextSeq = 0
	s.rootID = ""

	for i := range records {
		s.insert(records[i])
	}
}

func (s *Store) insert(r models.FileRecord) {
	rec := r
	s.records[rec.ID] = &rec
	s.seq[rec.ID] = s.nextSeq
	s.nextSeq++
	s.order = append(s.order, rec.ID)
	if rec.IsRoot() {
		s.rootID = rec.ID
		return
	}
	s.attach(rec.ID, *rec.ParentID)
}

// attach adds id to the child list of parentID keeping list order.
func (s *Store) attach(id, parentID string) {
	list := s.children[parentID]
	n := s.seq[id]
	i := sort.Search(len(list), func(i int) bool { return s.seq[list[i]] > n })
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = id
	s.children[parentID] = list
}

func (s *Store) detach(id, parentID string) {
	list := s.children[parentID]
	for i, child := range list {
		if child == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.children, parentID)
		return
	}
	s.children[parentID] = list
}

// snapshot renders the collection in list order. replace swaps in changed
// records, skip drops ids and extra is appended at the end.
func (s *Store) snapshot(replace map[string]models.FileRecord, skip map[string]bool, extra ...models.FileRecord) []models.FileRecord {
	out := make([]models.FileRecord, 0, len(s.order)+len(extra))
	for _, id := range s.order {
		if skip[id] {
			continue
		}
		if r, ok := replace[id]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, *s.records[id])
	}
	return append(out, extra...)
}

func (s *Store) persist(ctx context.Context, records []models.FileRecord) error {
	if s.readOnly {
		return ErrReadOnly
	}
	start := time.Now()
	data, err := encodeState(records)
	if err != nil {
		return fmt.Errorf("failed to encode file system state: %w", err)
	}
	if err := s.backend.Save(ctx, StorageKey, data); err != nil {
		persistErrors.Inc()
		return fmt.Errorf("failed to persist file system state: %w", err)
	}
	persistDuration.Observe(time.Since(start).Seconds())
	return nil
}

func (s *Store) publish(ev Event) {
	if s.observer != nil {
		s.observer(ev)
	}
}

func (s *Store) notify(ctx context.Context, message string, kind models.NotificationKind) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, message, kind)
	}
}

// Children returns the records whose parent is parentID, in list order. A nil
// parentID selects the root level.
func (s *Store) Children(parentID *string) []models.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	if parentID == nil {
		if s.rootID != "" {
			ids = []string{s.rootID}
		}
	} else {
		ids = s.children[*parentID]
	}

	out := make([]models.FileRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.records[id])
	}
	return out
}

func (s *Store) Get(id string) (models.FileRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return models.FileRecord{}, false
	}
	return *r, true
}

func (s *Store) RootID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootID
}

// Records returns the whole collection in list order.
func (s *Store) Records() []models.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(nil, nil)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Path renders the location of id as "/Documents/Notes.txt". The root and
// unknown ids render as "/"; unknown ids also return ErrNotFound. When the
// parent chain breaks, the partial path built so far is returned together
// with ErrUnresolvedPath.
func (s *Store) Path(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return "/", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.IsRoot() {
		return "/", nil
	}

	parts := []string{rec.Name}
	visited := map[string]bool{rec.ID: true}
	current := rec
	for current.ParentID != nil {
		parentID := *current.ParentID
		parent, ok := s.records[parentID]
		if !ok {
			return "/" + joinReversed(parts), fmt.Errorf("%w: %s", ErrUnresolvedPath, parentID)
		}
		if parent.IsRoot() {
			break
		}
		if visited[parentID] {
			return "/" + joinReversed(parts), fmt.Errorf("%w: at %s", ErrCycle, parentID)
		}
		visited[parentID] = true
		parts = append(parts, parent.Name)
		current = parent
	}

	return "/" + joinReversed(parts), nil
}

func joinReversed(parts []string) string {
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// Search matches query case-insensitively against names and file contents.
func (s *Store) Search(query string) []models.FileRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := []models.FileRecord{}
	for _, id := range s.order {
		r := s.records[id]
		if strings.Contains(strings.ToLower(r.Name), q) ||
			(r.Kind == models.KindFile && r.Content != "" && strings.Contains(strings.ToLower(r.Content), q)) {
			out = append(out, *r)
		}
	}
	return out
}

func (s *Store) CreateFile(ctx context.Context, name, parentID, content string) (models.FileRecord, error) {
	rec, err := s.create(ctx, name, parentID, models.KindFile, content)
	if err != nil {
		return models.FileRecord{}, err
	}
	s.publish(Event{Type: EventFileCreated, Record: &rec})
	return rec, nil
}

func (s *Store) CreateFolder(ctx context.Context, name, parentID string) (models.FileRecord, error) {
	rec, err := s.create(ctx, name, parentID, models.KindFolder, "")
	if err != nil {
		return models.FileRecord{}, err
	}
	s.publish(Event{Type: EventFolderCreated, Record: &rec})
	return rec, nil
}

func (s *Store) create(ctx context.Context, name, parentID string, kind models.FileKind, content string) (models.FileRecord, error) {
	if err := validateName(name); err != nil {
		return models.FileRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFolder(parentID); err != nil {
		return models.FileRecord{}, err
	}

	id, err := s.generateUniqueID()
	if err != nil {
		return models.FileRecord{}, err
	}

	now := s.now()
	rec := models.FileRecord{
		ID:         id,
		Name:       name,
		Kind:       kind,
		ParentID:   strPtr(parentID),
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if kind == models.KindFile {
		rec.Content = content
		rec.Size = contentSize(content)
		rec.Extension = extensionOf(name)
	}

	if err := s.persist(ctx, s.snapshot(nil, nil, rec)); err != nil {
		return models.FileRecord{}, err
	}
	s.insert(rec)
	return rec, nil
}

func (s *Store) generateUniqueID() (string, error) {
	maxRetries := 10
	for i := 0; i < maxRetries; i++ {
		id := s.newID()
		if _, exists := s.records[id]; !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

func (s *Store) requireFolder(id string) error {
	parent, ok := s.records[id]
	if !ok {
		return fmt.Errorf("%w: parent %s", ErrNotFound, id)
	}
	if !parent.IsFolder() {
		return fmt.Errorf("%w: %s", ErrNotAFolder, id)
	}
	return nil
}

// UpdateFile replaces the content of a file and recomputes its size.
func (s *Store) UpdateFile(ctx context.Context, id, content string) error {
	rec, err := s.modify(ctx, id, func(r *models.FileRecord) error {
		if r.Kind != models.KindFile {
			return fmt.Errorf("%w: %s", ErrNotAFile, id)
		}
		r.Content = content
		r.Size = contentSize(content)
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(Event{Type: EventFileUpdated, Record: &rec})
	s.notify(ctx, fmt.Sprintf("%s saved", rec.Name), models.NotificationSuccess)
	return nil
}

// Rename changes the display name. The extension keeps the value it got at
// creation time.
func (s *Store) Rename(ctx context.Context, id, newName string) error {
	if err := validateName(newName); err != nil {
		return err
	}
	rec, err := s.modify(ctx, id, func(r *models.FileRecord) error {
		r.Name = newName
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(Event{Type: EventFileRenamed, Record: &rec})
	return nil
}

// Move reparents id under newParentID. Moving a folder into its own subtree
// is rejected with ErrCycle.
func (s *Store) Move(ctx context.Context, id, newParentID string) error {
	s.mu.Lock()

	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.IsRoot() {
		s.mu.Unlock()
		return ErrRootImmutable
	}
	if err := s.requireFolder(newParentID); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.checkNotDescendant(newParentID, id); err != nil {
		s.mu.Unlock()
		return err
	}

	updated := *rec
	oldParentID := *rec.ParentID
	updated.ParentID = strPtr(newParentID)
	updated.ModifiedAt = s.now()

	if err := s.persist(ctx, s.snapshot(map[string]models.FileRecord{id: updated}, nil)); err != nil {
		s.mu.Unlock()
		return err
	}
	*rec = updated
	s.detach(id, oldParentID)
	s.attach(id, newParentID)
	s.mu.Unlock()

	s.publish(Event{Type: EventFileMoved, Record: &updated})
	return nil
}

// checkNotDescendant walks from start up to the root and fails if it passes
// through id.
func (s *Store) checkNotDescendant(start, id string) error {
	visited := make(map[string]bool)
	current := start
	for {
		if current == id {
			return fmt.Errorf("%w: %s is inside %s", ErrCycle, start, id)
		}
		if visited[current] {
			return fmt.Errorf("%w: at %s", ErrCycle, current)
		}
		visited[current] = true

		r, ok := s.records[current]
		if !ok || r.IsRoot() {
			return nil
		}
		current = *r.ParentID
	}
}

// Delete removes id and, for folders, every descendant in one write.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()

	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rec.IsRoot() {
		s.mu.Unlock()
		return ErrRootImmutable
	}

	closure, err := s.closure(id)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	skip := make(map[string]bool, len(closure))
	for _, cid := range closure {
		skip[cid] = true
	}

	if err := s.persist(ctx, s.snapshot(nil, skip)); err != nil {
		s.mu.Unlock()
		return err
	}

	deleted := *rec
	s.detach(id, *rec.ParentID)
	for _, cid := range closure {
		delete(s.records, cid)
		delete(s.seq, cid)
		delete(s.children, cid)
	}
	kept := s.order[:0]
	for _, oid := range s.order {
		if !skip[oid] {
			kept = append(kept, oid)
		}
	}
	s.order = kept
	s.mu.Unlock()

	s.publish(Event{Type: EventFileDeleted, Record: &deleted, DeletedIDs: closure})
	if len(closure) > 1 {
		s.notify(ctx, fmt.Sprintf("%s and %d items inside it deleted", deleted.Name, len(closure)-1), models.NotificationInfo)
	} else {
		s.notify(ctx, fmt.Sprintf("%s deleted", deleted.Name), models.NotificationInfo)
	}
	return nil
}

// closure lists id and everything below it, breadth first.
func (s *Store) closure(id string) ([]string, error) {
	out := []string{id}
	if !s.records[id].IsFolder() {
		return out, nil
	}

	seen := map[string]bool{id: true}
	queue := []string{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range s.children[current] {
			if seen[child] {
				return nil, fmt.Errorf("%w: at %s", ErrCycle, child)
			}
			seen[child] = true
			out = append(out, child)
			if s.records[child].IsFolder() {
				queue = append(queue, child)
			}
		}
	}
	return out, nil
}

// modify applies change to a copy of id, persists and then commits it.
func (s *Store) modify(ctx context.Context, id string, change func(*models.FileRecord) error) (models.FileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return models.FileRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := *rec
	if err := change(&updated); err != nil {
		return models.FileRecord{}, err
	}
	updated.ModifiedAt = s.now()

	if err := s.persist(ctx, s.snapshot(map[string]models.FileRecord{id: updated}, nil)); err != nil {
		return models.FileRecord{}, err
	}
	*rec = updated
	return updated, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func extensionOf(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

func contentSize(content string) int {
	return utf8.RuneCountInString(content)
}
