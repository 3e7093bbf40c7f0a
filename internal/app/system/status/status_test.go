package status

import "testing"

func TestIsValid(t *testing.T) {
	for _, s := range []string{"pending", "inprogress", "done", "canceled"} {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Pending", "in-progress", "completed", "active"} {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{Pending, InProgress, true},
		{Pending, Canceled, true},
		{Pending, Done, false},
		{Pending, Pending, false},
		{InProgress, Done, true},
		{InProgress, Canceled, true},
		{InProgress, Pending, false},
		{InProgress, InProgress, false},
		{Done, Canceled, false},
		{Done, InProgress, false},
		{Canceled, Pending, false},
		{"bogus", InProgress, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCanConfirm(t *testing.T) {
	tests := []struct {
		from string
		want bool
	}{
		{Pending, true},
		{InProgress, true},
		{Done, false},
		{Canceled, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := CanConfirm(tt.from); got != tt.want {
			t.Errorf("CanConfirm(%q) = %v, want %v", tt.from, got, tt.want)
		}
	}
}
