package scheduler

import (
	"testing"
	"time"
)

func TestUntilNextRun(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	tests := []struct {
		name string
		now  time.Time
	}{
		{"before nine", time.Date(2026, 3, 10, 6, 30, 0, 0, loc)},
		{"exactly nine", time.Date(2026, 3, 10, 9, 0, 0, 0, loc)},
		{"after nine", time.Date(2026, 3, 10, 21, 15, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := untilNextRun(tt.now)
			if d <= 0 {
				t.Fatalf("duration must be positive, got %v", d)
			}
			if d > 24*time.Hour {
				t.Fatalf("duration must stay within a day, got %v", d)
			}
			next := tt.now.Add(d).In(loc)
			if next.Hour() != 9 || next.Minute() != 0 {
				t.Errorf("next run = %v, want 09:00", next)
			}
		})
	}
}
