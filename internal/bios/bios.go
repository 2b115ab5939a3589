// Package bios keeps the firmware screen options of a desktop. Values are
// stored as bare strings under the keys browser clients always used.
package bios

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"
	"sync"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"
)

const (
	KeyFastBoot      = "bios_fast_boot"
	KeyBootOrder     = "bios_boot_order"
	KeySecurityLevel = "bios_security_level"
)

var ErrInvalidSetting = errors.New("invalid bios setting")

var (
	BootOrders     = []string{"hdd", "network", "usb"}
	SecurityLevels = []string{"standard", "high", "maximum"}
)

func Defaults() models.BiosSettings {
	return models.BiosSettings{
		FastBoot:      false,
		BootOrder:     "hdd",
		SecurityLevel: "standard",
	}
}

type Patch struct {
	FastBoot      *bool   `json:"fastBoot,omitempty"`
	BootOrder     *string `json:"bootOrder,omitempty"`
	SecurityLevel *string `json:"securityLevel,omitempty"`
}

type Manager struct {
	mu      sync.RWMutex
	backend kv.Store
	current models.BiosSettings
}

// New reads the stored options. Anything other than "true" disables fast
// boot and unknown boot orders or security levels fall back to the defaults.
func New(ctx context.Context, backend kv.Store) (*Manager, error) {
	m := &Manager{backend: backend, current: Defaults()}

	fastBoot, ok, err := loadRaw(ctx, backend, KeyFastBoot)
	if err != nil {
		return nil, err
	}
	if ok {
		m.current.FastBoot = fastBoot == "true"
	}

	if err := loadChoice(ctx, backend, KeyBootOrder, BootOrders, &m.current.BootOrder); err != nil {
		return nil, err
	}
	if err := loadChoice(ctx, backend, KeySecurityLevel, SecurityLevels, &m.current.SecurityLevel); err != nil {
		return nil, err
	}
	return m, nil
}

func loadRaw(ctx context.Context, backend kv.Store, key string) (string, bool, error) {
	data, err := backend.Load(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return string(data), true, nil
}

func loadChoice(ctx context.Context, backend kv.Store, key string, allowed []string, out *string) error {
	v, ok, err := loadRaw(ctx, backend, key)
	if err != nil || !ok {
		return err
	}
	if !slices.Contains(allowed, v) {
		log.Printf("WARN: Ignoring stored %s %q", key, v)
		return nil
	}
	*out = v
	return nil
}

func (m *Manager) Get() models.BiosSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update applies p and writes the keys whose values changed.
func (m *Manager) Update(ctx context.Context, p Patch) (models.BiosSettings, error) {
	if p.BootOrder != nil && !slices.Contains(BootOrders, *p.BootOrder) {
		return models.BiosSettings{}, fmt.Errorf("%w: unknown boot order %q", ErrInvalidSetting, *p.BootOrder)
	}
	if p.SecurityLevel != nil && !slices.Contains(SecurityLevels, *p.SecurityLevel) {
		return models.BiosSettings{}, fmt.Errorf("%w: unknown security level %q", ErrInvalidSetting, *p.SecurityLevel)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.current
	if p.FastBoot != nil {
		next.FastBoot = *p.FastBoot
	}
	if p.BootOrder != nil {
		next.BootOrder = *p.BootOrder
	}
	if p.SecurityLevel != nil {
		next.SecurityLevel = *p.SecurityLevel
	}

	writes := []struct {
		key        string
		prev, next string
	}{
		{KeyFastBoot, strconv.FormatBool(m.current.FastBoot), strconv.FormatBool(next.FastBoot)},
		{KeyBootOrder, m.current.BootOrder, next.BootOrder},
		{KeySecurityLevel, m.current.SecurityLevel, next.SecurityLevel},
	}
	for _, w := range writes {
		if w.prev == w.next {
			continue
		}
		if err := m.backend.Save(ctx, w.key, []byte(w.next)); err != nil {
			return m.current, fmt.Errorf("failed to save %s: %w", w.key, err)
		}
	}

	m.current = next
	return next, nil
}

func (m *Manager) Reset(ctx context.Context) (models.BiosSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range []string{KeyFastBoot, KeyBootOrder, KeySecurityLevel} {
		if err := m.backend.Delete(ctx, key); err != nil {
			return m.current, fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	m.current = Defaults()
	return m.current, nil
}
