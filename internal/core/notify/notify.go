// Package notify defines transient status notification types shared by the
// TUI toast stack.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Info builds an info-level notification.
func Info(message string) Notification {
	return Notification{Level: LevelInfo, Message: message, CreatedAt: time.Now()}
}

// Warn builds a warning-level notification.
func Warn(message string) Notification {
	return Notification{Level: LevelWarning, Message: message, CreatedAt: time.Now()}
}

// Error builds an error-level notification.
func Error(message string) Notification {
	return Notification{Level: LevelError, Message: message, CreatedAt: time.Now()}
}
