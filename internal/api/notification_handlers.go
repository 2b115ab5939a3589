package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"serwer-pulpitu/internal/models"

	"github.com/go-chi/chi/v5"
)

type CreateNotificationRequest struct {
	Title   string                  `json:"title" example:"Maintenance"`
	Message string                  `json:"message" example:"Sector C lights are flickering"`
	Kind    models.NotificationKind `json:"type" example:"warning"`
}

type NotificationListResponse struct {
	Items       []models.Notification `json:"items"`
	UnreadCount int                   `json:"unread_count"`
}

// @Summary      List notifications
// @Description  Newest first, together with the number of unread entries.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  NotificationListResponse
// @Failure      401  {string}  string "Unauthorized"
// @Router       /notifications [get]
func (s *Server) ListNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	writeJSON(w, http.StatusOK, NotificationListResponse{
		Items:       d.Notifications.List(),
		UnreadCount: d.Notifications.UnreadCount(),
	})
}

// @Summary      Add a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateNotificationRequest  true  "Notification"
// @Success      201      {object}  models.Notification
// @Failure      400      {string}  string "Invalid request body"
// @Router       /notifications [post]
func (s *Server) CreateNotificationHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())

	var req CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Title or message is required", http.StatusBadRequest)
		return
	}

	n, err := d.Notifications.Add(r.Context(), req.Title, req.Message, req.Kind)
	if err != nil {
		writeError(w, err, "Failed to add notification")
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification ID"
// @Success      204  {null}    nil "No Content"
// @Failure      404  {string}  string "Not found"
// @Router       /notifications/{id}/read [post]
func (s *Server) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	if err := d.Notifications.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to update notification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Mark all notifications as read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Router       /notifications/read-all [post]
func (s *Server) MarkAllNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	if err := d.Notifications.MarkAllAsRead(r.Context()); err != nil {
		writeError(w, err, "Failed to update notifications")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Delete a notification
// @Tags         notifications
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification ID"
// @Success      204  {null}    nil "No Content"
// @Failure      404  {string}  string "Not found"
// @Router       /notifications/{id} [delete]
func (s *Server) DeleteNotificationHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	if err := d.Notifications.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, "Failed to delete notification")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Clear all notifications
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Router       /notifications [delete]
func (s *Server) ClearNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	d := GetDesktopFromContext(r.Context())
	if err := d.Notifications.ClearAll(r.Context()); err != nil {
		writeError(w, err, "Failed to clear notifications")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
