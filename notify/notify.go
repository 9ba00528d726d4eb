// Package notify sends desktop notifications about launch outcomes.
// Delivery is delegated to the cross-platform beeep library; failures are
// reported to the caller but are never critical for the CLI, which only
// logs them.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notification is a single desktop notification.
type Notification struct {
	// Title is the notification title, typically the program name.
	Title string

	// Message is the notification body.
	Message string
}

// Notifier delivers notifications. The interface exists so the CLI can be
// tested without touching the desktop notification daemon.
type Notifier interface {
	Send(n Notification) error
}

// Desktop is the beeep-backed Notifier.
type Desktop struct{}

// NewDesktop returns a Notifier that uses the platform notification system.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Send delivers the notification via beeep.
func (d *Desktop) Send(n Notification) error {
	if n.Title == "" {
		return fmt.Errorf("notification title cannot be empty")
	}
	if err := beeep.Notify(n.Title, n.Message, ""); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
