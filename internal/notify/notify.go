// Package notify sends desktop notifications through beeep.
// On macOS it uses terminal-notifier or AppleScript, on Linux D-Bus or
// notify-send, on Windows the toast API.
package notify

import (
	"sync"

	"github.com/gen2brain/beeep"
)

// AppName is the title used for studio notifications.
const AppName = "Studio"

type notifier func(title, message string, icon any) error

var (
	mu       sync.Mutex
	notifyFn notifier = beeep.Notify
)

// SetNotifier replaces the platform notifier. Tests use it to capture calls.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifyFn = fn
}

// ResetNotifier restores the beeep notifier.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifyFn = beeep.Notify
}

// Send posts a notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	fn := notifyFn
	mu.Unlock()
	// Empty icon lets beeep pick the platform default.
	return fn(title, message, "")
}

// Alert posts an alert message under the application title.
func Alert(message string) error {
	return Send(AppName, message)
}
