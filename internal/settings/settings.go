// Package settings stores the system settings of a desktop. Every field is
// kept under its own key so that older clients which only know some of them
// keep working.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"
)

var ErrInvalidSetting = errors.New("invalid setting value")

var AccentColors = []string{"cyan", "purple", "green", "orange", "pink", "blue", "red"}

func Defaults() models.SystemSettings {
	return models.SystemSettings{
		BgGradientStart:   "#1a1a2e",
		BgGradientEnd:     "#16213e",
		AccentColor:       "cyan",
		FontFamily:        "JetBrains Mono",
		AnimationsEnabled: true,
		GlassOpacity:      0.55,
		DeviceName:        "URBANSHADE-TERMINAL",
		Brightness:        80,
		Volume:            70,
		SoundEffects:      true,
		Notifications:     true,
	}
}

// Patch holds the fields an update changes. Nil fields are left alone.
type Patch struct {
	BgGradientStart   *string  `json:"bgGradientStart,omitempty"`
	BgGradientEnd     *string  `json:"bgGradientEnd,omitempty"`
	AccentColor       *string  `json:"accentColor,omitempty"`
	FontFamily        *string  `json:"fontFamily,omitempty"`
	AnimationsEnabled *bool    `json:"animationsEnabled,omitempty"`
	GlassOpacity      *float64 `json:"glassOpacity,omitempty"`
	DeviceName        *string  `json:"deviceName,omitempty"`
	Brightness        *int     `json:"brightness,omitempty"`
	Volume            *int     `json:"volume,omitempty"`
	SoundEffects      *bool    `json:"soundEffects,omitempty"`
	Notifications     *bool    `json:"notifications,omitempty"`
}

type field struct {
	key     string
	aliases []string
	get     func(*models.SystemSettings) any
	load    func(context.Context, kv.Store, string, *models.SystemSettings) error
}

func loader[T any](ptr func(*models.SystemSettings) *T) func(context.Context, kv.Store, string, *models.SystemSettings) error {
	return func(ctx context.Context, s kv.Store, key string, out *models.SystemSettings) error {
		v, err := kv.LoadJSON(ctx, s, key, *ptr(out))
		if err != nil {
			return err
		}
		*ptr(out) = v
		return nil
	}
}

// storedKey returns the first of the field's keys that holds a value, or ""
// when none does.
func (f field) storedKey(ctx context.Context, s kv.Store) (string, error) {
	for _, key := range append([]string{f.key}, f.aliases...) {
		_, err := s.Load(ctx, key)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, kv.ErrNotFound) {
			return "", err
		}
	}
	return "", nil
}

// Browsers wrote the animations toggle as settings_animations_enabled while
// reading settings_animations, so both are accepted.
var fields = []field{
	{"settings_bg_gradient_start", nil, func(s *models.SystemSettings) any { return s.BgGradientStart }, loader(func(s *models.SystemSettings) *string { return &s.BgGradientStart })},
	{"settings_bg_gradient_end", nil, func(s *models.SystemSettings) any { return s.BgGradientEnd }, loader(func(s *models.SystemSettings) *string { return &s.BgGradientEnd })},
	{"settings_accent_color", nil, func(s *models.SystemSettings) any { return s.AccentColor }, loader(func(s *models.SystemSettings) *string { return &s.AccentColor })},
	{"settings_font_family", nil, func(s *models.SystemSettings) any { return s.FontFamily }, loader(func(s *models.SystemSettings) *string { return &s.FontFamily })},
	{"settings_animations", []string{"settings_animations_enabled"}, func(s *models.SystemSettings) any { return s.AnimationsEnabled }, loader(func(s *models.SystemSettings) *bool { return &s.AnimationsEnabled })},
	{"settings_glass_opacity", nil, func(s *models.SystemSettings) any { return s.GlassOpacity }, loader(func(s *models.SystemSettings) *float64 { return &s.GlassOpacity })},
	{"settings_device_name", nil, func(s *models.SystemSettings) any { return s.DeviceName }, loader(func(s *models.SystemSettings) *string { return &s.DeviceName })},
	{"settings_brightness", nil, func(s *models.SystemSettings) any { return s.Brightness }, loader(func(s *models.SystemSettings) *int { return &s.Brightness })},
	{"settings_volume", nil, func(s *models.SystemSettings) any { return s.Volume }, loader(func(s *models.SystemSettings) *int { return &s.Volume })},
	{"settings_sound_effects", nil, func(s *models.SystemSettings) any { return s.SoundEffects }, loader(func(s *models.SystemSettings) *bool { return &s.SoundEffects })},
	{"settings_notifications", nil, func(s *models.SystemSettings) any { return s.Notifications }, loader(func(s *models.SystemSettings) *bool { return &s.Notifications })},
}

type Manager struct {
	mu      sync.RWMutex
	backend kv.Store
	current models.SystemSettings
}

func New(ctx context.Context, backend kv.Store) (*Manager, error) {
	m := &Manager{backend: backend, current: Defaults()}
	for _, f := range fields {
		key, err := f.storedKey(ctx, backend)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f.key, err)
		}
		if key == "" {
			continue
		}
		if err := f.load(ctx, backend, key, &m.current); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", key, err)
		}
	}
	for _, problem := range sanitize(&m.current) {
		log.Printf("WARN: Stored setting replaced: %s", problem)
	}
	return m, nil
}

func (m *Manager) Get() models.SystemSettings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Update validates p against the current settings and writes the keys that
// actually changed.
func (m *Manager) Update(ctx context.Context, p Patch) (models.SystemSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.current
	apply(&next, p)
	if err := Validate(next); err != nil {
		return m.current, err
	}

	if err := m.write(ctx, m.current, next); err != nil {
		return m.current, err
	}
	m.current = next
	return next, nil
}

// Reset drops every stored key and returns to the defaults.
func (m *Manager) Reset(ctx context.Context) (models.SystemSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range fields {
		for _, key := range append([]string{f.key}, f.aliases...) {
			if err := m.backend.Delete(ctx, key); err != nil {
				return m.current, fmt.Errorf("failed to reset %s: %w", key, err)
			}
		}
	}
	m.current = Defaults()
	return m.current, nil
}

func (m *Manager) write(ctx context.Context, prev, next models.SystemSettings) error {
	for _, f := range fields {
		value := f.get(&next)
		if value == f.get(&prev) {
			continue
		}
		if err := kv.SaveJSON(ctx, m.backend, f.key, value); err != nil {
			return fmt.Errorf("failed to save %s: %w", f.key, err)
		}
	}
	return nil
}

func apply(s *models.SystemSettings, p Patch) {
	if p.BgGradientStart != nil {
		s.BgGradientStart = *p.BgGradientStart
	}
	if p.BgGradientEnd != nil {
		s.BgGradientEnd = *p.BgGradientEnd
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.AnimationsEnabled != nil {
		s.AnimationsEnabled = *p.AnimationsEnabled
	}
	if p.GlassOpacity != nil {
		s.GlassOpacity = *p.GlassOpacity
	}
	if p.DeviceName != nil {
		s.DeviceName = *p.DeviceName
	}
	if p.Brightness != nil {
		s.Brightness = *p.Brightness
	}
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.SoundEffects != nil {
		s.SoundEffects = *p.SoundEffects
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
}

// sanitize brings values loaded from storage back into range. Older clients
// accepted any accent and fell back to cyan when drawing.
func sanitize(s *models.SystemSettings) []string {
	def := Defaults()
	var fixed []string

	if !knownAccent(s.AccentColor) {
		fixed = append(fixed, fmt.Sprintf("accent color %q -> %q", s.AccentColor, def.AccentColor))
		s.AccentColor = def.AccentColor
	}
	if c := clampInt(s.Brightness, 0, 100); c != s.Brightness {
		fixed = append(fixed, fmt.Sprintf("brightness %d -> %d", s.Brightness, c))
		s.Brightness = c
	}
	if c := clampInt(s.Volume, 0, 100); c != s.Volume {
		fixed = append(fixed, fmt.Sprintf("volume %d -> %d", s.Volume, c))
		s.Volume = c
	}
	if c := math.Min(math.Max(s.GlassOpacity, 0), 1); c != s.GlassOpacity {
		fixed = append(fixed, fmt.Sprintf("glass opacity %v -> %v", s.GlassOpacity, c))
		s.GlassOpacity = c
	}
	if strings.TrimSpace(s.DeviceName) == "" {
		fixed = append(fixed, "empty device name -> default")
		s.DeviceName = def.DeviceName
	}
	if strings.TrimSpace(s.FontFamily) == "" {
		fixed = append(fixed, "empty font family -> default")
		s.FontFamily = def.FontFamily
	}
	return fixed
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func knownAccent(c string) bool {
	for _, known := range AccentColors {
		if c == known {
			return true
		}
	}
	return false
}

func Validate(s models.SystemSettings) error {
	if s.Brightness < 0 || s.Brightness > 100 {
		return fmt.Errorf("%w: brightness %d outside 0..100", ErrInvalidSetting, s.Brightness)
	}
	if s.Volume < 0 || s.Volume > 100 {
		return fmt.Errorf("%w: volume %d outside 0..100", ErrInvalidSetting, s.Volume)
	}
	if s.GlassOpacity < 0 || s.GlassOpacity > 1 {
		return fmt.Errorf("%w: glass opacity %v outside 0..1", ErrInvalidSetting, s.GlassOpacity)
	}
	if strings.TrimSpace(s.DeviceName) == "" {
		return fmt.Errorf("%w: device name is empty", ErrInvalidSetting)
	}
	if strings.TrimSpace(s.FontFamily) == "" {
		return fmt.Errorf("%w: font family is empty", ErrInvalidSetting)
	}
	if !knownAccent(s.AccentColor) {
		return fmt.Errorf("%w: unknown accent color %q", ErrInvalidSetting, s.AccentColor)
	}
	return nil
}
