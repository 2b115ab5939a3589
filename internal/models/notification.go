package models

import "time"

type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

type Notification struct {
	ID      string           `json:"id" example:"1f0c7d3e-4a9b-4a37-9b0e-2b1c5f0e9a11"`
	Title   string           `json:"title" example:"File saved"`
	Message string           `json:"message" example:"README.txt was saved"`
	Time    time.Time        `json:"time"`
	Read    bool             `json:"read"`
	Kind    NotificationKind `json:"type" example:"success"`
}
