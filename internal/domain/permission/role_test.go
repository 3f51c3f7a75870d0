package permission

import (
	"testing"

	"keybuddy/internal/shared/authorization"
)

func TestRoleDefaults_Admin(t *testing.T) {
	defaults := RoleDefaults(authorization.RoleAdmin)
	if len(defaults) != len(All()) {
		t.Errorf("admin defaults = %d permissions, want all %d", len(defaults), len(All()))
	}
}

func TestRoleDefaults_Hierarchy(t *testing.T) {
	// Each step down the role ladder only removes permissions.
	ranks := []authorization.UserRole{
		authorization.RoleAdmin,
		authorization.RoleManager,
		authorization.RoleUser,
		authorization.RoleViewer,
	}

	for i := 1; i < len(ranks); i++ {
		higher, lower := ranks[i-1], ranks[i]
		for _, perm := range RoleDefaults(lower) {
			if !RoleHasPermission(higher, perm) {
				t.Errorf("%s has %q but %s does not", lower, perm, higher)
			}
		}
	}
}

func TestRoleHasPermission(t *testing.T) {
	tests := []struct {
		role authorization.UserRole
		perm Permission
		want bool
	}{
		{role: authorization.RoleAdmin, perm: RestoreDatabase, want: true},
		{role: authorization.RoleManager, perm: BackupDatabase, want: true},
		{role: authorization.RoleManager, perm: RestoreDatabase, want: false},
		{role: authorization.RoleManager, perm: DeleteCustomer, want: false},
		{role: authorization.RoleUser, perm: CreateOrder, want: true},
		{role: authorization.RoleUser, perm: CreateCustomer, want: false},
		{role: authorization.RoleViewer, perm: ViewOrder, want: true},
		{role: authorization.RoleViewer, perm: CreateOrder, want: false},
	}

	for _, tt := range tests {
		if got := RoleHasPermission(tt.role, tt.perm); got != tt.want {
			t.Errorf("RoleHasPermission(%s, %q) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestRoleDefaults_ReturnsCopy(t *testing.T) {
	defaults := RoleDefaults(authorization.RoleViewer)
	if len(defaults) == 0 {
		t.Fatal("viewer should have defaults")
	}
	defaults[0] = Permission("tampered")

	if RoleDefaults(authorization.RoleViewer)[0] == "tampered" {
		t.Error("RoleDefaults() must not expose internal state")
	}
}

func TestParse(t *testing.T) {
	for _, p := range All() {
		got, err := Parse(string(p))
		if err != nil {
			t.Errorf("Parse(%q) error = %v", p, err)
		}
		if got != p {
			t.Errorf("Parse(%q) = %q", p, got)
		}
	}

	if _, err := Parse("launch_missiles"); err == nil {
		t.Error("Parse() should reject an unknown permission")
	}
}

func TestNewGrant(t *testing.T) {
	grant, err := NewGrant(3, DeleteCustomer, 1)
	if err != nil {
		t.Fatalf("NewGrant() error = %v", err)
	}
	if grant.UserID() != 3 || grant.Permission() != DeleteCustomer || grant.GrantedBy() != 1 {
		t.Errorf("grant = %+v", grant)
	}
	if grant.GrantedAt().IsZero() {
		t.Error("GrantedAt() should be set")
	}

	if _, err := NewGrant(0, DeleteCustomer, 1); err == nil {
		t.Error("NewGrant() should require a user")
	}
}
