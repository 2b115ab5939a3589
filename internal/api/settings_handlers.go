package api

import (
	"encoding/json"
	"net/http"

	"serwer-pulpitu/internal/settings"

	_ "serwer-pulpitu/internal/models"
)

const eventSettingsChanged = "settings_changed"

// @Summary      Get system settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SystemSettings
// @Router       /settings [get]
func (s *Server) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	writeJSON(w, http.StatusOK, d.Settings.Get())
}

// @Summary      Update system settings
// @Description  Changes only the fields present in the body. The whole update is rejected when any value is out of range.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        patch  body      settings.Patch  true  "Fields to change"
// @Success      200    {object}  models.SystemSettings
// @Failure      400    {string}  string "Invalid setting value"
// @Router       /settings [patch]
func (s *Server) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var patch settings.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := d.Settings.Update(r.Context(), patch)
	if err != nil {
		writeError(w, err, "Failed to update settings")
		return
	}
	s.desktops.Publish(d.ID, eventSettingsChanged, updated)
	writeJSON(w, http.StatusOK, updated)
}

// @Summary      Reset system settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SystemSettings
// @Router       /settings [delete]
func (s *Server) ResetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	defaults, err := d.Settings.Reset(r.Context())
	if err != nil {
		writeError(w, err, "Failed to reset settings")
		return
	}
	s.desktops.Publish(d.ID, eventSettingsChanged, defaults)
	writeJSON(w, http.StatusOK, defaults)
}
