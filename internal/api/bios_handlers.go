package api

import (
	"encoding/json"
	"net/http"

	"serwer-pulpitu/internal/bios"

	_ "serwer-pulpitu/internal/models"
)

const eventBiosChanged = "bios_changed"

// @Summary      Get BIOS options
// @Tags         bios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.BiosSettings
// @Router       /bios [get]
func (s *Server) GetBiosHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	writeJSON(w, http.StatusOK, d.Bios.Get())
}

// @Summary      Update BIOS options
// @Tags         bios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        patch  body      bios.Patch  true  "Fields to change"
// @Success      200    {object}  models.BiosSettings
// @Failure      400    {string}  string "Unknown boot order or security level"
// @Router       /bios [patch]
func (s *Server) UpdateBiosHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var patch bios.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := d.Bios.Update(r.Context(), patch)
	if err != nil {
		writeError(w, err, "Failed to update BIOS options")
		return
	}
	s.desktops.Publish(d.ID, eventBiosChanged, updated)
	writeJSON(w, http.StatusOK, updated)
}

// @Summary      Reset BIOS options
// @Tags         bios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.BiosSettings
// @Router       /bios [delete]
func (s *Server) ResetBiosHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	defaults, err := d.Bios.Reset(r.Context())
	if err != nil {
		writeError(w, err, "Failed to reset BIOS options")
		return
	}
	s.desktops.Publish(d.ID, eventBiosChanged, defaults)
	writeJSON(w, http.StatusOK, defaults)
}
