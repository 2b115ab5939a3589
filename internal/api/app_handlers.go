package api

import (
	"encoding/json"
	"net/http"

	"serwer-pulpitu/internal/models"

	"github.com/go-chi/chi/v5"
)

const eventAppsChanged = "apps_changed"

type DownloadAppRequest struct {
	AppID   string `json:"appId" example:"paint"`
	AppName string `json:"appName" example:"Paint"`
	Size    string `json:"size" example:"12 MB"`
}

// @Summary      List installed apps and plugins
// @Description  Returns installed apps, installers waiting in Downloads, installed plugins and plugin terminal commands.
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.InstalledApps
// @Router       /apps [get]
func (s *Server) ListAppsHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	writeJSON(w, http.StatusOK, d.Apps.Get())
}

// @Summary      Download an app installer
// @Tags         apps
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      DownloadAppRequest  true  "App to download"
// @Success      201      {object}  models.Installer
// @Failure      400      {string}  string "Invalid app id"
// @Router       /apps/downloads [post]
func (s *Server) DownloadAppHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var req DownloadAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	inst, err := d.Apps.Download(r.Context(), req.AppID, req.AppName, req.Size)
	if err != nil {
		writeError(w, err, "Failed to download installer")
		return
	}
	s.desktops.Publish(d.ID, eventAppsChanged, d.Apps.Get())
	writeJSON(w, http.StatusCreated, inst)
}

// @Summary      Run a downloaded installer
// @Tags         apps
// @Produce      json
// @Security     BearerAuth
// @Param        installerId  path      string  true  "Installer ID"
// @Success      200          {object}  models.InstalledApps
// @Failure      404          {string}  string "Installer not found"
// @Router       /apps/downloads/{installerId}/run [post]
func (s *Server) RunInstallerHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	if _, err := d.Apps.RunInstaller(r.Context(), chi.URLParam(r, "installerId")); err != nil {
		writeError(w, err, "Failed to run installer")
		return
	}
	installed := d.Apps.Get()
	s.desktops.Publish(d.ID, eventAppsChanged, installed)
	writeJSON(w, http.StatusOK, installed)
}

// @Summary      Uninstall an app
// @Tags         apps
// @Security     BearerAuth
// @Param        appId  path  string  true  "App ID"
// @Success      204
// @Failure      404  {string}  string "App not installed"
// @Router       /apps/{appId} [delete]
func (s *Server) UninstallAppHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	if err := d.Apps.Uninstall(r.Context(), chi.URLParam(r, "appId")); err != nil {
		writeError(w, err, "Failed to uninstall app")
		return
	}
	s.desktops.Publish(d.ID, eventAppsChanged, d.Apps.Get())
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Install a plugin
// @Description  Command plugins add a terminal command, theme plugins become the active theme, utility plugins are switched on.
// @Tags         plugins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        plugin  body      models.Plugin  true  "Plugin to install"
// @Success      201     {object}  models.InstalledApps
// @Failure      400     {string}  string "Invalid plugin"
// @Failure      409     {string}  string "Plugin already installed"
// @Router       /plugins [post]
func (s *Server) InstallPluginHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var p models.Plugin
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := d.Apps.InstallPlugin(r.Context(), p); err != nil {
		writeError(w, err, "Failed to install plugin")
		return
	}
	installed := d.Apps.Get()
	s.desktops.Publish(d.ID, eventAppsChanged, installed)
	writeJSON(w, http.StatusCreated, installed)
}

// @Summary      Uninstall a plugin
// @Tags         plugins
// @Security     BearerAuth
// @Param        pluginId  path  string  true  "Plugin ID"
// @Success      204
// @Failure      404  {string}  string "Plugin not installed"
// @Router       /plugins/{pluginId} [delete]
func (s *Server) UninstallPluginHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	if err := d.Apps.UninstallPlugin(r.Context(), chi.URLParam(r, "pluginId")); err != nil {
		writeError(w, err, "Failed to uninstall plugin")
		return
	}
	s.desktops.Publish(d.ID, eventAppsChanged, d.Apps.Get())
	w.WriteHeader(http.StatusNoContent)
}
