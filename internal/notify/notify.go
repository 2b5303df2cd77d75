// Package notify raises desktop reminder notifications.
package notify

import "github.com/gen2brain/beeep"

// Notifier sends a single notification. The UI depends on this
// interface so tests can capture reminders instead of popping toasts.
type Notifier interface {
	Notify(title, body string) error
}

// Desktop sends notifications through the OS notification service.
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Discard drops all notifications. Used when they are disabled in config.
type Discard struct{}

func (Discard) Notify(title, body string) error { return nil }
