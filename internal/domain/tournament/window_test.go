package tournament

import (
	"testing"
	"time"
)

func TestComputeSubmissionWindow_ThursdayStart(t *testing.T) {
	// 2026-04-09 is a Thursday, the usual first round day.
	start := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)

	windowStart, windowEnd := ComputeSubmissionWindow(start)

	wantStart := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	if !windowStart.Equal(wantStart) {
		t.Fatalf("expected window start on the Sunday before, got %v", windowStart)
	}

	wantEnd := time.Date(2026, 4, 8, 23, 59, 59, 0, time.UTC)
	if !windowEnd.Equal(wantEnd) {
		t.Fatalf("expected window end Wednesday 23:59:59, got %v", windowEnd)
	}
}

func TestComputeSubmissionWindow_SundayStart(t *testing.T) {
	// A Sunday start opens the window on that same day.
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	windowStart, windowEnd := ComputeSubmissionWindow(start)

	if !windowStart.Equal(start) {
		t.Fatalf("expected window start on the start day itself, got %v", windowStart)
	}
	wantEnd := time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC)
	if !windowEnd.Equal(wantEnd) {
		t.Fatalf("expected window end on the following Wednesday, got %v", windowEnd)
	}
}

func TestAcceptsPicksAt_UpperBoundOnly(t *testing.T) {
	item := Tournament{
		ID:              "014",
		Name:            "Masters Tournament",
		Year:            2026,
		SubmissionStart: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		SubmissionEnd:   time.Date(2026, 4, 8, 23, 59, 59, 0, time.UTC),
	}

	beforeWindow := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !item.AcceptsPicksAt(beforeWindow) {
		t.Fatal("expected picks accepted before the window opens")
	}
	if item.WindowOpenAt(beforeWindow) {
		t.Fatal("expected window closed before submission start")
	}

	atDeadline := item.SubmissionEnd
	if !item.AcceptsPicksAt(atDeadline) {
		t.Fatal("expected picks accepted at the deadline instant")
	}
	if !item.WindowOpenAt(atDeadline) {
		t.Fatal("expected window open at the deadline instant")
	}

	pastDeadline := item.SubmissionEnd.Add(time.Second)
	if item.AcceptsPicksAt(pastDeadline) {
		t.Fatal("expected picks rejected after the deadline")
	}
}
