// Package desktop ties the per-desktop components together and keeps one
// owner instance of each open desktop.
package desktop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sync"

	"serwer-pulpitu/internal/apps"
	"serwer-pulpitu/internal/bios"
	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"
	"serwer-pulpitu/internal/notifications"
	"serwer-pulpitu/internal/settings"
	"serwer-pulpitu/internal/vfs"
)

var ErrInvalidDesktopID = errors.New("desktop id must be 1-64 characters of letters, digits, '-' or '_'")

var desktopIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Publisher delivers encoded events to whoever watches a desktop.
type Publisher interface {
	PublishEvent(desktopID string, eventData []byte)
}

type Desktop struct {
	ID            string
	Files         *vfs.Store
	Notifications *notifications.Center
	Settings      *settings.Manager
	Bios          *bios.Manager
	Apps          *apps.Registry
}

type Registry struct {
	backend   kv.Store
	publisher Publisher

	mu       sync.Mutex
	desktops map[string]*Desktop
	// opening serializes loads of one desktop without blocking the others.
	opening map[string]*sync.Mutex
}

// NewRegistry creates a registry over backend. publisher may be nil.
func NewRegistry(backend kv.Store, publisher Publisher) *Registry {
	return &Registry{
		backend:   backend,
		publisher: publisher,
		desktops:  make(map[string]*Desktop),
		opening:   make(map[string]*sync.Mutex),
	}
}

func ValidateID(id string) error {
	if !desktopIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidDesktopID, id)
	}
	return nil
}

func scope(backend kv.Store, id string) kv.Store {
	return kv.Prefixed(backend, "desktop/"+id+"/")
}

// Open returns the desktop with the given id, loading it on first use.
func (r *Registry) Open(ctx context.Context, id string) (*Desktop, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	r.mu.Lock()
	if d, ok := r.desktops[id]; ok {
		r.mu.Unlock()
		return d, nil
	}
	lock, ok := r.opening[id]
	if !ok {
		lock = &sync.Mutex{}
		r.opening[id] = lock
	}
	r.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	d, ok := r.desktops[id]
	r.mu.Unlock()
	if ok {
		return d, nil
	}

	d, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.desktops[id] = d
	openDesktops.Set(float64(len(r.desktops)))
	r.mu.Unlock()

	log.Printf("Desktop %s opened (%d records)", id, d.Files.Len())
	return d, nil
}

func (r *Registry) load(ctx context.Context, id string) (*Desktop, error) {
	scoped := scope(r.backend, id)

	center, err := notifications.New(ctx, scoped, notifications.WithChangeHook(func(items []models.Notification) {
		r.Publish(id, "notifications_changed", items)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to open notifications for desktop %s: %w", id, err)
	}

	files, err := vfs.New(ctx, scoped,
		vfs.WithNotifier(center),
		vfs.WithObserver(func(ev vfs.Event) {
			r.Publish(id, string(ev.Type), ev)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open file system for desktop %s: %w", id, err)
	}

	prefs, err := settings.New(ctx, scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings for desktop %s: %w", id, err)
	}

	firmware, err := bios.New(ctx, scoped)
	if err != nil {
		return nil, fmt.Errorf("failed to open bios settings for desktop %s: %w", id, err)
	}

	installed, err := apps.New(ctx, scoped, apps.WithNotifier(center))
	if err != nil {
		return nil, fmt.Errorf("failed to open installed apps for desktop %s: %w", id, err)
	}

	return &Desktop{
		ID:            id,
		Files:         files,
		Notifications: center,
		Settings:      prefs,
		Bios:          firmware,
		Apps:          installed,
	}, nil
}

// OpenFiles opens the file tree of an existing desktop without writing
// anything to backend. A desktop that was never opened yields kv.ErrNotFound.
func OpenFiles(ctx context.Context, backend kv.Store, id string) (*vfs.Store, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	files, err := vfs.New(ctx, scope(backend, id), vfs.WithReadOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to open file system for desktop %s: %w", id, err)
	}
	return files, nil
}

// Close forgets a desktop so that the next Open reloads it from the backend.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.desktops, id)
	openDesktops.Set(float64(len(r.desktops)))
}

// Publish sends {"event_type": ..., "payload": ...} to the desktop's watchers.
func (r *Registry) Publish(desktopID, eventType string, payload interface{}) {
	if r.publisher == nil {
		return
	}

	eventMsg := map[string]interface{}{
		"event_type": eventType,
		"payload":    payload,
	}
	eventBytes, err := json.Marshal(eventMsg)
	if err != nil {
		log.Printf("WARN: Failed to marshal %s event for desktop %s: %v", eventType, desktopID, err)
		return
	}
	r.publisher.PublishEvent(desktopID, eventBytes)
}
