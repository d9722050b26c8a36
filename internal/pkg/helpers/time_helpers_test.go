package helpers

import (
	"testing"
	"time"
)

func TestFormatDisplayTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty input", "", ""},
		{"full timestamp", "2025-02-18T07:00:00", "Feb 18, 2025 07:00 AM"},
		{"datetime-local without seconds", "2025-02-19T18:30", "Feb 19, 2025 06:30 PM"},
		{"rfc3339", "2025-02-20T20:00:00Z", "Feb 20, 2025 08:00 PM"},
		{"no separator passes through", "7:00 AM", "7:00 AM"},
		{"unparseable passes through", "2025-13-45T99:99:00", "2025-13-45T99:99:00"},
		{"noon is PM", "2025-02-18T12:00:00", "Feb 18, 2025 12:00 PM"},
		{"midnight is AM", "2025-02-18T00:30:00", "Feb 18, 2025 12:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDisplayTime(tt.raw); got != tt.want {
				t.Errorf("FormatDisplayTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("15s", time.Minute); got != 15*time.Second {
		t.Errorf("ParseDuration(15s) = %v", got)
	}
	if got := ParseDuration("nonsense", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration fallback = %v, want 1m", got)
	}
	if got := ParseDuration("", 10*time.Second); got != 10*time.Second {
		t.Errorf("ParseDuration empty = %v, want 10s", got)
	}
}
