package models

import "time"

type NotificationVariant string

const (
	VariantDefault     NotificationVariant = "default"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a toast shown to one session after an action completes.
type Notification struct {
	ID          string              `json:"id"`
	SessionID   string              `json:"session_id,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	CreatedAt   time.Time           `json:"created_at"`
}

func NewNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

func NewDestructiveNotification(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}
