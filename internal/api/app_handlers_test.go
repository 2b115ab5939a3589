package api

import (
	"net/http"
	"testing"

	"serwer-pulpitu/internal/bios"
	"serwer-pulpitu/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBiosHandlers(t *testing.T) {
	token := login(t, "bios-desk").AccessToken

	rr := doRequest(t, http.MethodGet, "/api/v1/bios", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, bios.Defaults(), decode[models.BiosSettings](t, rr))

	fast := true
	order := "network"
	rr = doRequest(t, http.MethodPatch, "/api/v1/bios", bios.Patch{FastBoot: &fast, BootOrder: &order}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[models.BiosSettings](t, rr)
	require.True(t, got.FastBoot)
	require.Equal(t, "network", got.BootOrder)

	level := "lax"
	rr = doRequest(t, http.MethodPatch, "/api/v1/bios", bios.Patch{SecurityLevel: &level}, token)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, http.MethodDelete, "/api/v1/bios", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, bios.Defaults(), decode[models.BiosSettings](t, rr))
}

func TestAppHandlers_InstallFlow(t *testing.T) {
	token := login(t, "apps-desk").AccessToken

	rr := doRequest(t, http.MethodPost, "/api/v1/apps/downloads", DownloadAppRequest{AppID: "paint", AppName: "Paint", Size: "12 MB"}, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	inst := decode[models.Installer](t, rr)
	require.Equal(t, "Paint Installer.exe", inst.Name)

	rr = doRequest(t, http.MethodPost, "/api/v1/apps/downloads/"+inst.ID+"/run", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	installed := decode[models.InstalledApps](t, rr)
	require.Equal(t, []string{"paint"}, installed.Apps)
	require.Empty(t, installed.Installers)

	rr = doRequest(t, http.MethodPost, "/api/v1/apps/downloads/"+inst.ID+"/run", nil, token)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, http.MethodGet, "/api/v1/notifications", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Paint has been installed successfully.")

	rr = doRequest(t, http.MethodDelete, "/api/v1/apps/paint", nil, token)
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = doRequest(t, http.MethodDelete, "/api/v1/apps/paint", nil, token)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, http.MethodPost, "/api/v1/apps/downloads", DownloadAppRequest{AppID: "../etc"}, token)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPluginHandlers(t *testing.T) {
	token := login(t, "plugins-desk").AccessToken

	plugin := models.Plugin{ID: "cmd-sysinfo", Name: "Sys Info", Category: models.PluginCommand, Description: "System information"}
	rr := doRequest(t, http.MethodPost, "/api/v1/plugins", plugin, token)
	require.Equal(t, http.StatusCreated, rr.Code)
	installed := decode[models.InstalledApps](t, rr)
	require.Equal(t, []string{"cmd-sysinfo"}, installed.Plugins)
	require.Equal(t, "sysinfo", installed.Commands[0].Name)

	rr = doRequest(t, http.MethodPost, "/api/v1/plugins", plugin, token)
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = doRequest(t, http.MethodPost, "/api/v1/plugins", models.Plugin{ID: "x", Category: "widget"}, token)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, http.MethodDelete, "/api/v1/plugins/cmd-sysinfo", nil, token)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, http.MethodGet, "/api/v1/apps", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	installed = decode[models.InstalledApps](t, rr)
	require.Empty(t, installed.Plugins)
	require.Empty(t, installed.Commands)
}
