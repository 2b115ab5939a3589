package vfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%03d", n)
	}
}

func newTestStore(t *testing.T, backend kv.Store, opts ...Option) *Store {
	t.Helper()
	if backend == nil {
		backend = kv.NewMemory()
	}
	opts = append([]Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
	}, opts...)

	s, err := New(context.Background(), backend, opts...)
	require.NoError(t, err)
	return s
}

func countRoots(records []models.FileRecord) int {
	roots := 0
	for _, r := range records {
		if r.ParentID == nil {
			roots++
		}
	}
	return roots
}

func TestNew_SeedsAndPersistsDefaultTree(t *testing.T) {
	backend := kv.NewMemory()
	s := newTestStore(t, backend)

	records := s.Records()
	require.Len(t, records, 7)
	require.Equal(t, RootID, records[0].ID)
	require.Equal(t, 1, countRoots(records))

	rootLevel := s.Children(strPtr(RootID))
	names := make([]string, 0, len(rootLevel))
	for _, r := range rootLevel {
		names = append(names, r.Name)
	}
	require.Equal(t, []string{"Documents", "Downloads", "Pictures", "System"}, names)

	readme, ok := s.Get("readme")
	require.True(t, ok)
	require.Equal(t, "txt", readme.Extension)
	require.Equal(t, contentSize(readme.Content), readme.Size)

	// Drzewo domyślne powinno zostać od razu zapisane
	_, err := backend.Load(context.Background(), StorageKey)
	require.NoError(t, err)
}

func TestChildren(t *testing.T) {
	s := newTestStore(t, nil)

	root := s.Children(nil)
	require.Len(t, root, 1)
	require.Equal(t, RootID, root[0].ID)

	require.Empty(t, s.Children(strPtr("downloads")), "empty folder has no children")
	require.Empty(t, s.Children(strPtr("unknown")), "unknown parent has no children")
	require.Empty(t, s.Children(strPtr("readme")), "files have no children")
}

func TestCreateFile_ComputesExtensionAndSize(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	f, err := s.CreateFile(ctx, "archive.tar.gz", "downloads", "zażółć")
	require.NoError(t, err)
	require.Equal(t, "gz", f.Extension)
	require.Equal(t, 6, f.Size, "size counts characters, not bytes")
	require.Equal(t, models.KindFile, f.Kind)
	require.Equal(t, testNow, f.CreatedAt)
	require.Equal(t, testNow, f.ModifiedAt)
	require.Equal(t, "downloads", *f.ParentID)

	noExt, err := s.CreateFile(ctx, "Makefile", "downloads", "")
	require.NoError(t, err)
	require.Empty(t, noExt.Extension)
	require.Zero(t, noExt.Size)

	got, ok := s.Get(f.ID)
	require.True(t, ok)
	require.Equal(t, f, got)
}

func TestCreateFolder(t *testing.T) {
	s := newTestStore(t, nil)

	folder, err := s.CreateFolder(context.Background(), "Projects", "documents")
	require.NoError(t, err)
	require.True(t, folder.IsFolder())
	require.Zero(t, folder.Size)
	require.Empty(t, folder.Content)
	require.Empty(t, folder.Extension)

	children := s.Children(strPtr("documents"))
	require.Len(t, children, 2)
	require.Equal(t, "README.txt", children[0].Name)
	require.Equal(t, "Projects", children[1].Name)
}

func TestCreate_ValidatesParentAndName(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	_, err := s.CreateFile(ctx, "a.txt", "nope", "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateFolder(ctx, "Inside", "readme")
	require.ErrorIs(t, err, ErrNotAFolder)

	_, err = s.CreateFile(ctx, "   ", "documents", "")
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = s.CreateFolder(ctx, "a/b", "documents")
	require.ErrorIs(t, err, ErrInvalidName)

	require.Equal(t, 7, s.Len(), "failed creates must not add records")
}

func TestUpdateFile_SizeInvariant(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	f, err := s.CreateFile(ctx, "notes.txt", "documents", "short")
	require.NoError(t, err)

	for _, content := range []string{"", "a much longer piece of content", "█▓▒░"} {
		require.NoError(t, s.UpdateFile(ctx, f.ID, content))
		got, ok := s.Get(f.ID)
		require.True(t, ok)
		require.Equal(t, content, got.Content)
		require.Equal(t, contentSize(content), got.Size)
	}
}

func TestUpdateFile_Errors(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	require.ErrorIs(t, s.UpdateFile(ctx, "missing", "x"), ErrNotFound)
	require.ErrorIs(t, s.UpdateFile(ctx, "documents", "x"), ErrNotAFile)
}

func TestUpdateFile_BumpsModifiedAt(t *testing.T) {
	clock := testNow
	s := newTestStore(t, nil, WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	f, err := s.CreateFile(ctx, "todo.md", "documents", "")
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	require.NoError(t, s.UpdateFile(ctx, f.ID, "buy milk"))

	got, _ := s.Get(f.ID)
	require.Equal(t, testNow, got.CreatedAt)
	require.Equal(t, testNow.Add(time.Minute), got.ModifiedAt)
}

func TestRename_KeepsExtension(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	f, err := s.CreateFile(ctx, "a.txt", "documents", "")
	require.NoError(t, err)
	require.Equal(t, "txt", f.Extension)

	require.NoError(t, s.Rename(ctx, f.ID, "a.md"))

	got, ok := s.Get(f.ID)
	require.True(t, ok)
	require.Equal(t, "a.md", got.Name)
	require.Equal(t, "txt", got.Extension)

	require.ErrorIs(t, s.Rename(ctx, "missing", "x"), ErrNotFound)
	require.ErrorIs(t, s.Rename(ctx, f.ID, ""), ErrInvalidName)
}

func TestPath(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	p, err := s.Path(RootID)
	require.NoError(t, err)
	require.Equal(t, "/", p)

	notes, err := s.CreateFile(ctx, "Notes.txt", "documents", "")
	require.NoError(t, err)
	p, err = s.Path(notes.ID)
	require.NoError(t, err)
	require.Equal(t, "/Documents/Notes.txt", p)

	deep, err := s.CreateFolder(ctx, "Deep", "documents")
	require.NoError(t, err)
	deeper, err := s.CreateFile(ctx, "x.log", deep.ID, "")
	require.NoError(t, err)
	p, err = s.Path(deeper.ID)
	require.NoError(t, err)
	require.Equal(t, "/Documents/Deep/x.log", p)

	p, err = s.Path("documents")
	require.NoError(t, err)
	require.Equal(t, "/Documents", p)

	p, err = s.Path("missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, "/", p)
}

func TestPath_DanglingParentReturnsPartialPath(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	inner, err := s.CreateFolder(ctx, "Inner", "documents")
	require.NoError(t, err)
	leaf, err := s.CreateFile(ctx, "leaf.txt", inner.ID, "")
	require.NoError(t, err)

	// Symulujemy zerwany łańcuch rodziców, którego sklep sam nigdy nie tworzy
	s.mu.Lock()
	delete(s.records, "documents")
	s.mu.Unlock()

	p, err := s.Path(leaf.ID)
	require.ErrorIs(t, err, ErrUnresolvedPath)
	require.Equal(t, "/Inner/leaf.txt", p)
}

func TestPath_CycleIsReported(t *testing.T) {
	s := newTestStore(t, nil)

	s.mu.Lock()
	s.records["documents"].ParentID = strPtr("pictures")
	s.records["pictures"].ParentID = strPtr("documents")
	s.mu.Unlock()

	_, err := s.Path("readme")
	require.ErrorIs(t, err, ErrCycle)
}

func TestDelete_CascadeScenario(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	a, err := s.CreateFolder(ctx, "A", RootID)
	require.NoError(t, err)
	b, err := s.CreateFolder(ctx, "B", a.ID)
	require.NoError(t, err)
	c, err := s.CreateFile(ctx, "c.txt", b.ID, "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))

	for _, id := range []string{a.ID, b.ID, c.ID} {
		_, ok := s.Get(id)
		require.False(t, ok, "%s should be gone", id)
	}
	require.Len(t, s.Records(), 7)
}

func TestDelete_ClosureCompleteness(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	// root -> top -> {middle -> {m1.txt, sub -> s1.txt}, keep -> k1.txt}
	top, err := s.CreateFolder(ctx, "top", RootID)
	require.NoError(t, err)
	middle, err := s.CreateFolder(ctx, "middle", top.ID)
	require.NoError(t, err)
	keep, err := s.CreateFolder(ctx, "keep", top.ID)
	require.NoError(t, err)
	m1, err := s.CreateFile(ctx, "m1.txt", middle.ID, "")
	require.NoError(t, err)
	sub, err := s.CreateFolder(ctx, "sub", middle.ID)
	require.NoError(t, err)
	s1, err := s.CreateFile(ctx, "s1.txt", sub.ID, "")
	require.NoError(t, err)
	k1, err := s.CreateFile(ctx, "k1.txt", keep.ID, "")
	require.NoError(t, err)

	before := s.Len()
	require.NoError(t, s.Delete(ctx, middle.ID))
	require.Equal(t, before-4, s.Len())

	for _, id := range []string{middle.ID, m1.ID, sub.ID, s1.ID} {
		_, ok := s.Get(id)
		require.False(t, ok)
	}
	for _, id := range []string{top.ID, keep.ID, k1.ID, "readme", "secrets"} {
		_, ok := s.Get(id)
		require.True(t, ok)
	}

	require.Equal(t, []models.FileRecord{mustGet(t, s, keep.ID)}, s.Children(&top.ID))
	require.Empty(t, s.Children(&middle.ID))
}

func mustGet(t *testing.T, s *Store, id string) models.FileRecord {
	t.Helper()
	r, ok := s.Get(id)
	require.True(t, ok)
	return r
}

func TestDelete_SingleFileAndErrors(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "readme"))
	_, ok := s.Get("readme")
	require.False(t, ok)
	_, ok = s.Get("documents")
	require.True(t, ok)

	require.ErrorIs(t, s.Delete(ctx, "readme"), ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, RootID), ErrRootImmutable)
	require.Equal(t, 1, countRoots(s.Records()))
}

func TestMove(t *testing.T) {
	clock := testNow
	s := newTestStore(t, nil, WithClock(func() time.Time { return clock }))
	ctx := context.Background()

	clock = clock.Add(time.Hour)
	require.NoError(t, s.Move(ctx, "readme", "downloads"))

	got := mustGet(t, s, "readme")
	require.Equal(t, "downloads", *got.ParentID)
	require.Equal(t, testNow.Add(time.Hour), got.ModifiedAt)
	require.Empty(t, s.Children(strPtr("documents")))
	require.Equal(t, []models.FileRecord{got}, s.Children(strPtr("downloads")))

	p, err := s.Path("readme")
	require.NoError(t, err)
	require.Equal(t, "/Downloads/README.txt", p)
}

func TestMove_KeepsListOrderInTarget(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	late, err := s.CreateFile(ctx, "late.txt", "pictures", "")
	require.NoError(t, err)

	// README został utworzony wcześniej, więc w nowym folderze ląduje przed late.txt
	require.NoError(t, s.Move(ctx, "readme", "pictures"))

	children := s.Children(strPtr("pictures"))
	require.Len(t, children, 2)
	require.Equal(t, "readme", children[0].ID)
	require.Equal(t, late.ID, children[1].ID)
}

func TestMove_RejectsCyclesAndBadTargets(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	a, err := s.CreateFolder(ctx, "A", RootID)
	require.NoError(t, err)
	b, err := s.CreateFolder(ctx, "B", a.ID)
	require.NoError(t, err)

	require.ErrorIs(t, s.Move(ctx, a.ID, b.ID), ErrCycle)
	require.ErrorIs(t, s.Move(ctx, a.ID, a.ID), ErrCycle)
	require.ErrorIs(t, s.Move(ctx, RootID, a.ID), ErrRootImmutable)
	require.ErrorIs(t, s.Move(ctx, "missing", a.ID), ErrNotFound)
	require.ErrorIs(t, s.Move(ctx, a.ID, "missing"), ErrNotFound)
	require.ErrorIs(t, s.Move(ctx, a.ID, "readme"), ErrNotAFolder)

	require.Equal(t, RootID, *mustGet(t, s, a.ID).ParentID)
	require.Equal(t, a.ID, *mustGet(t, s, b.ID).ParentID)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	budget, err := s.CreateFile(ctx, "Budget.txt", "documents", "Q1 totals")
	require.NoError(t, err)
	notes, err := s.CreateFile(ctx, "Notes.md", "documents", "remember milk")
	require.NoError(t, err)

	byContent := s.Search("totals")
	require.Len(t, byContent, 1)
	require.Equal(t, budget.ID, byContent[0].ID)

	byName := s.Search("notes")
	require.Len(t, byName, 1)
	require.Equal(t, notes.ID, byName[0].ID)

	folders := s.Search("PICT")
	require.Len(t, folders, 1)
	require.Equal(t, "pictures", folders[0].ID)

	require.Empty(t, s.Search("no such thing"))
	require.Len(t, s.Search(""), s.Len(), "empty query matches everything")
}

func TestSingleRootInvariant(t *testing.T) {
	s := newTestStore(t, nil)
	ctx := context.Background()

	f, err := s.CreateFolder(ctx, "F", RootID)
	require.NoError(t, err)
	require.Equal(t, 1, countRoots(s.Records()))
	require.NoError(t, s.Move(ctx, f.ID, "documents"))
	require.Equal(t, 1, countRoots(s.Records()))
	_ = s.Delete(ctx, RootID)
	require.NoError(t, s.Delete(ctx, "documents"))
	require.Equal(t, 1, countRoots(s.Records()))
}

func TestPersistenceRoundTrip(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()
	s := newTestStore(t, backend)

	folder, err := s.CreateFolder(ctx, "Projects", "documents")
	require.NoError(t, err)
	_, err = s.CreateFile(ctx, "plan.md", folder.ID, "# Plan")
	require.NoError(t, err)
	require.NoError(t, s.Rename(ctx, "secrets", "OPEN.txt"))
	require.NoError(t, s.Delete(ctx, "pictures"))

	reloaded := newTestStore(t, backend)
	require.Equal(t, s.Records(), reloaded.Records())

	data, err := backend.Load(ctx, StorageKey)
	require.NoError(t, err)
	var state persistedState
	require.NoError(t, json.Unmarshal(data, &state))
	require.Equal(t, stateVersion, state.Version)
	require.Equal(t, s.Records(), state.Records)
}

type flakyBackend struct {
	*kv.Memory
	mu   sync.Mutex
	fail bool
}

func (f *flakyBackend) Save(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	fail := f.fail
	f.mu.Unlock()
	if fail {
		return errors.New("backend unavailable")
	}
	return f.Memory.Save(ctx, key, value)
}

func TestFailedSaveLeavesMemoryUntouched(t *testing.T) {
	backend := &flakyBackend{Memory: kv.NewMemory()}
	s := newTestStore(t, backend)
	ctx := context.Background()
	before := s.Records()

	backend.fail = true

	_, err := s.CreateFile(ctx, "x.txt", "documents", "")
	require.Error(t, err)
	require.Error(t, s.UpdateFile(ctx, "readme", "changed"))
	require.Error(t, s.Rename(ctx, "readme", "renamed.txt"))
	require.Error(t, s.Move(ctx, "readme", "downloads"))
	require.Error(t, s.Delete(ctx, "documents"))

	require.Equal(t, before, s.Records())
	require.Len(t, s.Children(strPtr("documents")), 1)
}

func TestLoad_MigratesLegacyArray(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()

	legacy := `[
		{"id":"root","name":"Root","type":"folder","parentId":null,"createdAt":"2024-05-01T10:00:00.000Z","modifiedAt":"2024-05-01T10:00:00.000Z","size":0},
		{"id":"documents","name":"Documents","type":"folder","parentId":"root","createdAt":"2024-05-01T10:00:00.000Z","modifiedAt":"2024-05-01T10:00:00.000Z","size":0},
		{"id":"1714557600000","name":"diary.txt","type":"file","content":"dear diary","parentId":"documents","createdAt":"2024-05-01T10:00:00.000Z","modifiedAt":"2024-05-01T10:00:00.000Z","size":10,"extension":"txt"}
	]`
	require.NoError(t, backend.Save(ctx, StorageKey, []byte(legacy)))

	s := newTestStore(t, backend)
	require.Equal(t, 3, s.Len())
	p, err := s.Path("1714557600000")
	require.NoError(t, err)
	require.Equal(t, "/Documents/diary.txt", p)

	data, err := backend.Load(ctx, StorageKey)
	require.NoError(t, err)
	var state persistedState
	require.NoError(t, json.Unmarshal(data, &state))
	require.Equal(t, stateVersion, state.Version, "legacy layout should be rewritten")
	require.Len(t, state.Records, 3)
}

func TestLoad_LegacySizesAreRecomputed(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()

	// "zażółć 😀" to 8 run, a przeglądarka zapisała 9 jednostek UTF-16
	legacy := `[
		{"id":"root","name":"Root","type":"folder","parentId":null,"createdAt":"2024-05-01T10:00:00.000Z","modifiedAt":"2024-05-01T10:00:00.000Z","size":0},
		{"id":"n","name":"n.txt","type":"file","content":"zażółć 😀","parentId":"root","createdAt":"2024-05-01T10:00:00.000Z","modifiedAt":"2024-05-01T10:00:00.000Z","size":9,"extension":"txt"}
	]`
	require.NoError(t, backend.Save(ctx, StorageKey, []byte(legacy)))

	s := newTestStore(t, backend)
	require.Equal(t, 8, mustGet(t, s, "n").Size)
}

func TestReadOnly_NeverWritesBackend(t *testing.T) {
	ctx := context.Background()
	legacy := `[{"id":"root","name":"Root","type":"folder","parentId":null,"createdAt":"2024-05-01T10:00:00.000Z","modifiedAt":"2024-05-01T10:00:00.000Z","size":0}]`
	blobs := map[string]string{
		"legacy":    legacy,
		"malformed": `{"version":1,"records":[`,
	}

	for name, blob := range blobs {
		t.Run(name, func(t *testing.T) {
			backend := kv.NewMemory()
			require.NoError(t, backend.Save(ctx, StorageKey, []byte(blob)))

			s, err := New(ctx, backend, WithReadOnly())
			if name == "malformed" {
				require.ErrorIs(t, err, ErrMalformedState)
			} else {
				require.NoError(t, err)
				require.Equal(t, 1, s.Len())
				require.NoError(t, s.Reload(ctx))

				_, err = s.CreateFile(ctx, "x.txt", "root", "x")
				require.ErrorIs(t, err, ErrReadOnly)
				require.Equal(t, 1, s.Len())
			}

			require.Equal(t, []string{StorageKey}, backend.Keys())
			data, err := backend.Load(ctx, StorageKey)
			require.NoError(t, err)
			require.Equal(t, blob, string(data))
		})
	}
}

func TestReadOnly_MissingStateIsNotSeeded(t *testing.T) {
	backend := kv.NewMemory()

	_, err := New(context.Background(), backend, WithReadOnly())
	require.ErrorIs(t, err, kv.ErrNotFound)
	require.Empty(t, backend.Keys())
}

func TestLoad_MalformedStateFallsBackToSeed(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"version":1,"records":[`,
		"future version":  `{"version":9,"records":[]}`,
		"no root":         `{"version":1,"records":[{"id":"a","name":"A","type":"folder","parentId":"b"},{"id":"b","name":"B","type":"folder","parentId":"a"}]}`,
		"two roots":       `{"version":1,"records":[{"id":"a","name":"A","type":"folder","parentId":null},{"id":"b","name":"B","type":"folder","parentId":null}]}`,
		"duplicate id":    `[{"id":"root","name":"R","type":"folder","parentId":null},{"id":"root","name":"R","type":"folder","parentId":null}]`,
		"orphan":          `[{"id":"root","name":"R","type":"folder","parentId":null},{"id":"x","name":"x.txt","type":"file","parentId":"gone"}]`,
		"file as parent":  `[{"id":"root","name":"R","type":"folder","parentId":null},{"id":"f","name":"f.txt","type":"file","parentId":"root"},{"id":"g","name":"g.txt","type":"file","parentId":"f"}]`,
		"detached cycle":  `[{"id":"root","name":"R","type":"folder","parentId":null},{"id":"a","name":"A","type":"folder","parentId":"b"},{"id":"b","name":"B","type":"folder","parentId":"a"}]`,
		"file root":       `[{"id":"root","name":"R","type":"file","parentId":null}]`,
	}

	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			backend := kv.NewMemory()
			ctx := context.Background()
			require.NoError(t, backend.Save(ctx, StorageKey, []byte(blob)))

			s := newTestStore(t, backend)
			require.Len(t, s.Records(), 7, "default tree expected")

			kept, err := backend.Load(ctx, StorageKey+".corrupt")
			require.NoError(t, err)
			require.Equal(t, blob, string(kept))
		})
	}
}

func TestDecodeState_ErrorKinds(t *testing.T) {
	_, _, err := decodeState([]byte(`{"version":2,"records":[]}`))
	require.ErrorIs(t, err, ErrMalformedState)
	require.ErrorIs(t, err, ErrUnknownVersion)

	_, _, err = decodeState([]byte(`[{"id":"root","name":"R","type":"folder","parentId":null},{"id":"a","name":"A","type":"folder","parentId":"b"},{"id":"b","name":"B","type":"folder","parentId":"a"}]`))
	require.ErrorIs(t, err, ErrCycle)

	_, _, err = decodeState([]byte(`[{"id":"root","name":"R","type":"folder","parentId":null},{"id":"x","name":"x","type":"file","parentId":"gone"}]`))
	require.ErrorIs(t, err, ErrOrphanRecord)
}

type recordingNotifier struct {
	messages []string
	kinds    []models.NotificationKind
}

func (r *recordingNotifier) Notify(_ context.Context, message string, kind models.NotificationKind) {
	r.messages = append(r.messages, message)
	r.kinds = append(r.kinds, kind)
}

func TestObserverAndNotifier(t *testing.T) {
	notifier := &recordingNotifier{}
	var events []Event
	s := newTestStore(t, nil,
		WithNotifier(notifier),
		WithObserver(func(ev Event) { events = append(events, ev) }),
	)
	ctx := context.Background()

	folder, err := s.CreateFolder(ctx, "Work", RootID)
	require.NoError(t, err)
	file, err := s.CreateFile(ctx, "todo.txt", folder.ID, "")
	require.NoError(t, err)
	require.NoError(t, s.UpdateFile(ctx, file.ID, "ship it"))
	require.NoError(t, s.Rename(ctx, file.ID, "done.txt"))
	require.NoError(t, s.Move(ctx, file.ID, "documents"))
	require.NoError(t, s.Delete(ctx, folder.ID))
	require.NoError(t, s.Reload(ctx))

	types := make([]EventType, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	require.Equal(t, []EventType{
		EventFolderCreated, EventFileCreated, EventFileUpdated,
		EventFileRenamed, EventFileMoved, EventFileDeleted, EventReloaded,
	}, types)
	require.Equal(t, []string{folder.ID}, events[5].DeletedIDs)

	require.Equal(t, []string{"todo.txt saved", "Work deleted"}, notifier.messages)
	require.Equal(t, []models.NotificationKind{models.NotificationSuccess, models.NotificationInfo}, notifier.kinds)
}

func TestReload_PicksUpExternalChanges(t *testing.T) {
	backend := kv.NewMemory()
	ctx := context.Background()
	first := newTestStore(t, backend)
	second := newTestStore(t, backend)

	_, err := first.CreateFile(ctx, "shared.txt", "documents", "hi")
	require.NoError(t, err)
	require.Empty(t, second.Search("shared"))

	require.NoError(t, second.Reload(ctx))
	require.Len(t, second.Search("shared"), 1)
}

func TestNew_DefaultIDsAreNanoids(t *testing.T) {
	s, err := New(context.Background(), kv.NewMemory())
	require.NoError(t, err)

	f, err := s.CreateFile(context.Background(), "a.txt", "documents", "")
	require.NoError(t, err)
	require.Len(t, f.ID, 21)
}
