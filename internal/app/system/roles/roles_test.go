package roles

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{"donor", true},
		{"volunteer", true},
		{"admin", true},
		{"vip", false},
		{"Donor", false},
		{"", false},
		{" admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValid(tt.role); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}
