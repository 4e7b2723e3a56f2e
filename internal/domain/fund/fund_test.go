package fund_test

import (
	"testing"
	"time"

	"github.com/Perod122/SinkIt/internal/domain/fund"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestShouldComplete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status fund.Status
		now    time.Time
		want   bool
	}{
		{
			name:   "active before deadline",
			status: fund.StatusActive,
			now:    date("2024-01-15"),
			want:   false,
		},
		{
			name:   "active on deadline day",
			status: fund.StatusActive,
			now:    date("2024-01-31"),
			want:   false,
		},
		{
			name:   "active past deadline",
			status: fund.StatusActive,
			now:    date("2024-02-01"),
			want:   true,
		},
		{
			name:   "completed never flips back",
			status: fund.StatusCompleted,
			now:    date("2024-02-01"),
			want:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := &fund.SinkingFund{
				StartDate: date("2024-01-01"),
				EndDate:   date("2024-01-31"),
				Status:    tt.status,
			}
			if got := f.ShouldComplete(tt.now); got != tt.want {
				t.Fatalf("ShouldComplete = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeStatus(t *testing.T) {
	t.Parallel()

	f := &fund.SinkingFund{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-31"),
		Status:    fund.StatusActive,
	}

	if got := fund.ComputeStatus(f, date("2024-01-20")); got != fund.StatusActive {
		t.Fatalf("before deadline: got %s, want active", got)
	}
	if got := fund.ComputeStatus(f, date("2024-02-01")); got != fund.StatusCompleted {
		t.Fatalf("past deadline: got %s, want completed", got)
	}

	// ComputeStatus é puro: o fundo não muda.
	if f.Status != fund.StatusActive {
		t.Fatalf("ComputeStatus mutated the fund: %s", f.Status)
	}

	manuallyCompleted := &fund.SinkingFund{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-12-31"),
		Status:    fund.StatusCompleted,
	}
	if got := fund.ComputeStatus(manuallyCompleted, date("2024-06-01")); got != fund.StatusCompleted {
		t.Fatalf("manually completed fund: got %s, want completed", got)
	}
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	f := &fund.SinkingFund{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-31"),
	}

	if got := f.DaysRemaining(date("2024-01-21")); got != 10 {
		t.Fatalf("10 days out: got %d", got)
	}
	if got := f.DaysRemaining(date("2024-01-31")); got != 0 {
		t.Fatalf("on deadline: got %d", got)
	}
	if got := f.DaysRemaining(date("2024-03-01")); got != 0 {
		t.Fatalf("past deadline must clamp to zero: got %d", got)
	}
}

func TestTimeProgress(t *testing.T) {
	t.Parallel()

	f := &fund.SinkingFund{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-31"),
	}

	if got := f.TimeProgress(date("2024-01-16")); got != 50 {
		t.Fatalf("midpoint: got %f, want 50", got)
	}
	if got := f.TimeProgress(date("2023-12-01")); got != 0 {
		t.Fatalf("before start must clamp to 0: got %f", got)
	}
	if got := f.TimeProgress(date("2024-06-01")); got != 100 {
		t.Fatalf("past deadline must clamp to 100: got %f", got)
	}

	sameDay := &fund.SinkingFund{
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-01"),
	}
	if got := sameDay.TimeProgress(date("2024-01-01")); got != 100 {
		t.Fatalf("zero-length window: got %f, want 100", got)
	}
}
