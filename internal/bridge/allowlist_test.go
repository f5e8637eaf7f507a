package bridge

import "testing"

func TestAllowListEmptyAllowsAll(t *testing.T) {
	var nilList *AllowList
	if !nilList.IsAllowed("+41790000000") {
		t.Error("nil allow-list denied a sender, want allow-all")
	}

	empty := NewAllowList(nil)
	if !empty.IsAllowed("+41790000000") {
		t.Error("empty allow-list denied a sender, want allow-all")
	}
}

func TestAllowListMatching(t *testing.T) {
	a := NewAllowList([]string{"+41790000000", " +49151111111 "})

	tests := []struct {
		sender string
		want   bool
	}{
		{"+41790000000", true},
		{"+49151111111", true},   // trimmed at construction
		{" +41790000000 ", true}, // trimmed at lookup
		{"+44700000000", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := a.IsAllowed(tt.sender); got != tt.want {
			t.Errorf("IsAllowed(%q) = %v, want %v", tt.sender, got, tt.want)
		}
	}
}

func TestAllowListNormalizesCase(t *testing.T) {
	// Alphanumeric sender IDs are compared case-insensitively.
	a := NewAllowList([]string{"MyBank"})
	if !a.IsAllowed("mybank") {
		t.Error("IsAllowed(mybank) = false, want case-insensitive match")
	}
}
