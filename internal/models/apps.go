package models

import "time"

type PluginCategory string

const (
	PluginTheme   PluginCategory = "theme"
	PluginCommand PluginCategory = "command"
	PluginUtility PluginCategory = "utility"
)

// Installer is a downloaded app installer waiting in the Downloads folder.
type Installer struct {
	ID         string    `json:"id" example:"1714557600000"`
	Name       string    `json:"name" example:"Paint Installer.exe"`
	AppID      string    `json:"appId" example:"paint"`
	AppName    string    `json:"appName" example:"Paint"`
	Size       string    `json:"size" example:"12 MB"`
	Downloaded time.Time `json:"downloaded"`
}

type Plugin struct {
	ID          string            `json:"id" example:"cmd-sysinfo"`
	Name        string            `json:"name" example:"System Info"`
	Category    PluginCategory    `json:"category" example:"command"`
	Description string            `json:"description,omitempty"`
	Theme       map[string]string `json:"theme,omitempty"`
}

// PluginCommand is a terminal command contributed by a command plugin.
type PluginCommand struct {
	ID          string `json:"id" example:"cmd-sysinfo"`
	Name        string `json:"name" example:"systeminfo"`
	Description string `json:"description"`
}

type InstalledApps struct {
	Apps       []string        `json:"apps"`
	Installers []Installer     `json:"installers"`
	Plugins    []string        `json:"plugins"`
	Commands   []PluginCommand `json:"commands"`
}
