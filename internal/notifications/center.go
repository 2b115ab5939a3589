// Package notifications keeps the notification list shown in a desktop's
// notification center.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"

	"github.com/google/uuid"
)

const (
	StorageKey = "system_notifications"
	MaxKept    = 50
)

var ErrNotificationNotFound = errors.New("notification not found")

type Center struct {
	mu       sync.RWMutex
	backend  kv.Store
	items    []models.Notification
	now      func() time.Time
	onChange func([]models.Notification)
}

type Option func(*Center)

func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

// WithChangeHook is called with the new list after every committed change.
func WithChangeHook(fn func([]models.Notification)) Option {
	return func(c *Center) { c.onChange = fn }
}

func New(ctx context.Context, backend kv.Store, opts ...Option) (*Center, error) {
	c := &Center{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Center) Reload(ctx context.Context) error {
	items, err := kv.LoadJSON(ctx, c.backend, StorageKey, []models.Notification{})
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	if items == nil {
		items = []models.Notification{}
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// List returns notifications newest first.
func (c *Center) List() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneList(c.items)
}

func (c *Center) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, item := range c.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// Add puts a notification at the top of the list, dropping the oldest ones
// beyond MaxKept.
func (c *Center) Add(ctx context.Context, title, message string, kind models.NotificationKind) (models.Notification, error) {
	n := models.Notification{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Time:    c.now(),
		Read:    false,
		Kind:    normalizeKind(kind),
	}

	err := c.update(ctx, func(items []models.Notification) ([]models.Notification, error) {
		next := append([]models.Notification{n}, items...)
		if len(next) > MaxKept {
			next = next[:MaxKept]
		}
		return next, nil
	})
	if err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// Notify lets the center act as the toast sink of other components.
func (c *Center) Notify(ctx context.Context, message string, kind models.NotificationKind) {
	kind = normalizeKind(kind)
	if _, err := c.Add(ctx, titleFor(kind), message, kind); err != nil {
		log.Printf("WARN: Failed to record notification %q: %v", message, err)
	}
}

func (c *Center) MarkAsRead(ctx context.Context, id string) error {
	return c.update(ctx, func(items []models.Notification) ([]models.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Read = true
				return items, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	})
}

func (c *Center) MarkAllAsRead(ctx context.Context) error {
	return c.update(ctx, func(items []models.Notification) ([]models.Notification, error) {
		for i := range items {
			items[i].Read = true
		}
		return items, nil
	})
}

func (c *Center) Delete(ctx context.Context, id string) error {
	return c.update(ctx, func(items []models.Notification) ([]models.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrNotificationNotFound, id)
	})
}

func (c *Center) ClearAll(ctx context.Context) error {
	return c.update(ctx, func([]models.Notification) ([]models.Notification, error) {
		return []models.Notification{}, nil
	})
}

// update runs change on a copy of the list and commits it once saved.
func (c *Center) update(ctx context.Context, change func([]models.Notification) ([]models.Notification, error)) error {
	c.mu.Lock()
	next, err := change(cloneList(c.items))
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if err := kv.SaveJSON(ctx, c.backend, StorageKey, next); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	c.items = next
	snapshot := cloneList(next)
	c.mu.Unlock()

	if c.onChange != nil {
		c.onChange(snapshot)
	}
	return nil
}

func cloneList(items []models.Notification) []models.Notification {
	out := make([]models.Notification, len(items))
	copy(out, items)
	return out
}

func normalizeKind(kind models.NotificationKind) models.NotificationKind {
	switch kind {
	case models.NotificationInfo, models.NotificationSuccess, models.NotificationWarning, models.NotificationError:
		return kind
	default:
		return models.NotificationInfo
	}
}

func titleFor(kind models.NotificationKind) string {
	switch kind {
	case models.NotificationSuccess:
		return "Success"
	case models.NotificationWarning:
		return "Warning"
	case models.NotificationError:
		return "Error"
	default:
		return "Info"
	}
}
