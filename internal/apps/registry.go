// Package apps tracks what a desktop has taken from the app store and the
// plugin store: downloaded installers, installed apps, installed plugins and
// the terminal commands those plugins add.
package apps

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/models"

	"github.com/google/uuid"
)

const (
	KeyInstalledApps    = "urbanshade_installed_apps"
	KeyInstallers       = "downloads_installers"
	KeyInstalledPlugins = "installed_plugins"
	KeyPluginCommands   = "plugin_commands"
	KeyActiveTheme      = "active_theme"
)

var (
	ErrInvalidID         = errors.New("id must be 1-64 characters of letters, digits, '.', '-' or '_'")
	ErrInvalidPlugin     = errors.New("invalid plugin")
	ErrInstallerNotFound = errors.New("installer not found")
	ErrNotInstalled      = errors.New("not installed")
	ErrAlreadyInstalled  = errors.New("already installed")
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// Notifier receives short user-facing messages about completed installs.
type Notifier interface {
	Notify(ctx context.Context, message string, kind models.NotificationKind)
}

type Option func(*Registry)

func WithNotifier(n Notifier) Option {
	return func(r *Registry) { r.notifier = n }
}

func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

type Registry struct {
	mu       sync.Mutex
	backend  kv.Store
	notifier Notifier
	now      func() time.Time
	state    models.InstalledApps
}

func New(ctx context.Context, backend kv.Store, opts ...Option) (*Registry, error) {
	r := &Registry{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	if r.state.Apps, err = kv.LoadJSON(ctx, backend, KeyInstalledApps, []string{}); err != nil {
		return nil, err
	}
	if r.state.Installers, err = kv.LoadJSON(ctx, backend, KeyInstallers, []models.Installer{}); err != nil {
		return nil, err
	}
	if r.state.Plugins, err = kv.LoadJSON(ctx, backend, KeyInstalledPlugins, []string{}); err != nil {
		return nil, err
	}
	if r.state.Commands, err = kv.LoadJSON(ctx, backend, KeyPluginCommands, []models.PluginCommand{}); err != nil {
		return nil, err
	}
	return r, nil
}

func validateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Get returns a copy of everything installed.
func (r *Registry) Get() models.InstalledApps {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.InstalledApps{
		Apps:       slices.Clone(r.state.Apps),
		Installers: slices.Clone(r.state.Installers),
		Plugins:    slices.Clone(r.state.Plugins),
		Commands:   slices.Clone(r.state.Commands),
	}
}

func (r *Registry) IsInstalled(appID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.state.Apps, appID)
}

// Download puts an installer for appID into the Downloads list. Installing
// happens later, when the installer is run.
func (r *Registry) Download(ctx context.Context, appID, appName, size string) (models.Installer, error) {
	if err := validateID(appID); err != nil {
		return models.Installer{}, err
	}
	if strings.TrimSpace(appName) == "" {
		appName = appID
	}
	if size == "" {
		size = "0 MB"
	}

	inst := models.Installer{
		ID:         uuid.NewString(),
		Name:       appName + " Installer.exe",
		AppID:      appID,
		AppName:    appName,
		Size:       size,
		Downloaded: r.now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := append(slices.Clone(r.state.Installers), inst)
	if err := kv.SaveJSON(ctx, r.backend, KeyInstallers, next); err != nil {
		return models.Installer{}, fmt.Errorf("failed to save installers: %w", err)
	}
	r.state.Installers = next
	return inst, nil
}

// RunInstaller installs the app behind installerID and removes the installer
// from Downloads.
func (r *Registry) RunInstaller(ctx context.Context, installerID string) (models.Installer, error) {
	r.mu.Lock()

	i := slices.IndexFunc(r.state.Installers, func(in models.Installer) bool { return in.ID == installerID })
	if i < 0 {
		r.mu.Unlock()
		return models.Installer{}, fmt.Errorf("%w: %s", ErrInstallerNotFound, installerID)
	}
	inst := r.state.Installers[i]

	apps := r.state.Apps
	if !slices.Contains(apps, inst.AppID) {
		apps = append(slices.Clone(apps), inst.AppID)
		if err := kv.SaveJSON(ctx, r.backend, KeyInstalledApps, apps); err != nil {
			r.mu.Unlock()
			return models.Installer{}, fmt.Errorf("failed to save installed apps: %w", err)
		}
	}
	r.state.Apps = apps

	installers := slices.Delete(slices.Clone(r.state.Installers), i, i+1)
	if err := kv.SaveJSON(ctx, r.backend, KeyInstallers, installers); err != nil {
		r.mu.Unlock()
		return models.Installer{}, fmt.Errorf("failed to save installers: %w", err)
	}
	r.state.Installers = installers
	r.mu.Unlock()

	log.Printf("App %s installed", inst.AppID)
	r.notify(ctx, inst.AppName+" has been installed successfully.", models.NotificationSuccess)
	return inst, nil
}

func (r *Registry) Uninstall(ctx context.Context, appID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.state.Apps, appID) {
		return fmt.Errorf("%w: app %s", ErrNotInstalled, appID)
	}
	next := slices.DeleteFunc(slices.Clone(r.state.Apps), func(id string) bool { return id == appID })
	if err := kv.SaveJSON(ctx, r.backend, KeyInstalledApps, next); err != nil {
		return fmt.Errorf("failed to save installed apps: %w", err)
	}
	r.state.Apps = next
	return nil
}

// InstallPlugin records p and applies its effect: command plugins register a
// terminal command, theme plugins write their theme_<key> values and become
// the active theme, utility plugins are marked active.
func (r *Registry) InstallPlugin(ctx context.Context, p models.Plugin) error {
	if err := validateID(p.ID); err != nil {
		return err
	}
	switch p.Category {
	case models.PluginCommand:
		if commandName(p.Name) == "" {
			return fmt.Errorf("%w: command plugin %s needs a name", ErrInvalidPlugin, p.ID)
		}
	case models.PluginTheme:
		for key := range p.Theme {
			if strings.TrimSpace(key) == "" {
				return fmt.Errorf("%w: empty theme key in %s", ErrInvalidPlugin, p.ID)
			}
		}
	case models.PluginUtility:
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidPlugin, p.Category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.state.Plugins, p.ID) {
		return fmt.Errorf("%w: plugin %s", ErrAlreadyInstalled, p.ID)
	}

	switch p.Category {
	case models.PluginCommand:
		commands := append(slices.Clone(r.state.Commands), models.PluginCommand{
			ID:          p.ID,
			Name:        commandName(p.Name),
			Description: p.Description,
		})
		if err := kv.SaveJSON(ctx, r.backend, KeyPluginCommands, commands); err != nil {
			return fmt.Errorf("failed to save plugin commands: %w", err)
		}
		r.state.Commands = commands
	case models.PluginTheme:
		for key, value := range p.Theme {
			if err := r.backend.Save(ctx, "theme_"+key, []byte(value)); err != nil {
				return fmt.Errorf("failed to save theme_%s: %w", key, err)
			}
		}
		if err := r.backend.Save(ctx, KeyActiveTheme, []byte(p.ID)); err != nil {
			return fmt.Errorf("failed to save active theme: %w", err)
		}
	case models.PluginUtility:
		if err := r.backend.Save(ctx, "utility_"+p.ID, []byte("active")); err != nil {
			return fmt.Errorf("failed to activate utility %s: %w", p.ID, err)
		}
	}

	plugins := append(slices.Clone(r.state.Plugins), p.ID)
	if err := kv.SaveJSON(ctx, r.backend, KeyInstalledPlugins, plugins); err != nil {
		return fmt.Errorf("failed to save installed plugins: %w", err)
	}
	r.state.Plugins = plugins
	log.Printf("Plugin %s (%s) installed", p.ID, p.Category)
	return nil
}

// UninstallPlugin removes the plugin together with its command, its utility
// flag and the active theme marker when it points at this plugin.
func (r *Registry) UninstallPlugin(ctx context.Context, pluginID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !slices.Contains(r.state.Plugins, pluginID) {
		return fmt.Errorf("%w: plugin %s", ErrNotInstalled, pluginID)
	}

	plugins := slices.DeleteFunc(slices.Clone(r.state.Plugins), func(id string) bool { return id == pluginID })
	if err := kv.SaveJSON(ctx, r.backend, KeyInstalledPlugins, plugins); err != nil {
		return fmt.Errorf("failed to save installed plugins: %w", err)
	}
	r.state.Plugins = plugins

	if slices.ContainsFunc(r.state.Commands, func(c models.PluginCommand) bool { return c.ID == pluginID }) {
		commands := slices.DeleteFunc(slices.Clone(r.state.Commands), func(c models.PluginCommand) bool { return c.ID == pluginID })
		if err := kv.SaveJSON(ctx, r.backend, KeyPluginCommands, commands); err != nil {
			return fmt.Errorf("failed to save plugin commands: %w", err)
		}
		r.state.Commands = commands
	}

	if err := r.backend.Delete(ctx, "utility_"+pluginID); err != nil {
		return fmt.Errorf("failed to deactivate utility %s: %w", pluginID, err)
	}
	active, err := r.backend.Load(ctx, KeyActiveTheme)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return fmt.Errorf("failed to load active theme: %w", err)
	case string(active) == pluginID:
		if err := r.backend.Delete(ctx, KeyActiveTheme); err != nil {
			return fmt.Errorf("failed to clear active theme: %w", err)
		}
	}
	return nil
}

func (r *Registry) notify(ctx context.Context, message string, kind models.NotificationKind) {
	if r.notifier != nil {
		r.notifier.Notify(ctx, message, kind)
	}
}

// commandName turns "Net Stat" into "netstat".
func commandName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
