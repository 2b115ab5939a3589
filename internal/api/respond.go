package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"serwer-pulpitu/internal/apps"
	"serwer-pulpitu/internal/bios"
	"serwer-pulpitu/internal/desktop"
	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/notifications"
	"serwer-pulpitu/internal/settings"
	"serwer-pulpitu/internal/vfs"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN: Failed to encode response: %v", err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, kv.ErrNotFound)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, vfs.ErrNotFound),
		errors.Is(err, notifications.ErrNotificationNotFound),
		errors.Is(err, apps.ErrInstallerNotFound),
		errors.Is(err, apps.ErrNotInstalled):
		return http.StatusNotFound
	case errors.Is(err, vfs.ErrInvalidName),
		errors.Is(err, vfs.ErrNotAFolder),
		errors.Is(err, vfs.ErrNotAFile),
		errors.Is(err, settings.ErrInvalidSetting),
		errors.Is(err, desktop.ErrInvalidDesktopID),
		errors.Is(err, bios.ErrInvalidSetting),
		errors.Is(err, apps.ErrInvalidID),
		errors.Is(err, apps.ErrInvalidPlugin):
		return http.StatusBadRequest
	case errors.Is(err, vfs.ErrCycle),
		errors.Is(err, vfs.ErrRootImmutable),
		errors.Is(err, apps.ErrAlreadyInstalled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %s: %v", fallback, err)
		http.Error(w, fallback, status)
		return
	}
	http.Error(w, err.Error(), status)
}
