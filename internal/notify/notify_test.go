package notify

import (
	"errors"
	"testing"
)

type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, _ any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestAlert(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		mockErr     error
		expectError bool
	}{
		{"editor alert", "Opening flyer editor...", nil, false},
		{"payment alert", "Redirecting to payment page...", nil, false},
		{"notifier failure", "Opening resume editor...", errors.New("dbus unavailable"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Alert(tt.message)
			if tt.expectError != (err != nil) {
				t.Fatalf("Alert error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
			}
			if mock.calls[0].message != tt.message {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.message)
			}
		})
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	if len(mock.calls) != 0 {
		t.Fatalf("mock called %d times, want 0", len(mock.calls))
	}
}
