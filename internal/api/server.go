package api

import (
	"log"
	"net/http"
	"sync"

	"serwer-pulpitu/internal/config"
	"serwer-pulpitu/internal/desktop"
	"serwer-pulpitu/internal/kv"
	"serwer-pulpitu/internal/websocket"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	config   *config.Config
	backend  kv.Store
	desktops *desktop.Registry
	wsHub    *websocket.Hub

	sessionsMu sync.Mutex
}

func NewServer(cfg *config.Config, backend kv.Store, desktops *desktop.Registry, wsHub *websocket.Hub) *Server {
	if cfg.Auth.PasswordHash == "" {
		log.Println("WARN: auth.password_hash is empty, every login password is accepted")
	}
	return &Server{
		config:   cfg,
		backend:  backend,
		desktops: desktops,
		wsHub:    wsHub,
	}
}

// Routes mounts the public and the authenticated API on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/ws", s.ServeWsHandler)
	r.Get("/health", s.HealthCheckHandler)
	r.Post("/api/v1/auth/login", s.LoginHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)

		r.Post("/auth/logout", s.LogoutHandler)
		r.Get("/sessions", s.ListSessionsHandler)
		r.Delete("/sessions/{sessionId}", s.DeleteSessionHandler)
		r.Post("/sessions/terminate_all", s.TerminateAllSessionsHandler)

		r.Get("/files", s.ListFilesHandler)
		r.Get("/files/search", s.SearchFilesHandler)
		r.Get("/files/export", s.ExportFilesHandler)
		r.Post("/files/reload", s.ReloadFilesHandler)
		r.Post("/files/file", s.CreateFileHandler)
		r.Post("/files/folder", s.CreateFolderHandler)
		r.Get("/files/{id}", s.GetFileHandler)
		r.Get("/files/{id}/path", s.GetFilePathHandler)
		r.Put("/files/{id}/content", s.UpdateFileContentHandler)
		r.Patch("/files/{id}", s.UpdateFileHandler)
		r.Delete("/files/{id}", s.DeleteFileHandler)

		r.Get("/notifications", s.ListNotificationsHandler)
		r.Post("/notifications", s.CreateNotificationHandler)
		r.Post("/notifications/read-all", s.MarkAllNotificationsReadHandler)
		r.Post("/notifications/{id}/read", s.MarkNotificationReadHandler)
		r.Delete("/notifications/{id}", s.DeleteNotificationHandler)
		r.Delete("/notifications", s.ClearNotificationsHandler)

		r.Get("/settings", s.GetSettingsHandler)
		r.Patch("/settings", s.UpdateSettingsHandler)
		r.Delete("/settings", s.ResetSettingsHandler)

		r.Get("/bios", s.GetBiosHandler)
		r.Patch("/bios", s.UpdateBiosHandler)
		r.Delete("/bios", s.ResetBiosHandler)

		r.Get("/apps", s.ListAppsHandler)
		r.Post("/apps/downloads", s.DownloadAppHandler)
		r.Post("/apps/downloads/{installerId}/run", s.RunInstallerHandler)
		r.Delete("/apps/{appId}", s.UninstallAppHandler)
		r.Post("/plugins", s.InstallPluginHandler)
		r.Delete("/plugins/{pluginId}", s.UninstallPluginHandler)
	})
}

// @Summary      Health check
// @Description  Reports that the server is up and the storage backend answers.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := s.backend.Load(r.Context(), "health/check"); err != nil && !isNotFound(err) {
		log.Printf("ERROR: Health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
