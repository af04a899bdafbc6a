package domain

import "testing"

func TestBookStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookStatus
		want     bool
	}{
		{StatusAvailable, StatusBorrowed, true},
		{StatusBorrowed, StatusAvailable, true},
		{StatusAvailable, StatusAvailable, false},
		{StatusBorrowed, StatusBorrowed, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestRoleForEmail(t *testing.T) {
	if got := RoleForEmail("admin@lib.com"); got != RoleAdmin {
		t.Errorf("expected admin role, got %q", got)
	}
	if got := RoleForEmail("jane@site.com"); got != RoleMember {
		t.Errorf("expected member role, got %q", got)
	}
	// The substring match applies anywhere in the address.
	if got := RoleForEmail("jane@admin-office.org"); got != RoleAdmin {
		t.Errorf("expected admin role for admin domain, got %q", got)
	}
}

func TestNameForEmail(t *testing.T) {
	if got := NameForEmail("jane@site.com"); got != "jane" {
		t.Errorf("expected %q, got %q", "jane", got)
	}
	if got := NameForEmail("no-separator"); got != "no-separator" {
		t.Errorf("expected whole string without separator, got %q", got)
	}
}
