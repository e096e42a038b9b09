package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantRole Role
		wantOK   bool
	}{
		{"manager", "manager", "MarlaSchr", RoleManager, true},
		{"cashier", "cashier", "Glitz", RoleCashier, true},
		{"wrong password", "manager", "Glitz", "", false},
		{"swapped", "cashier", "MarlaSchr", "", false},
		{"case sensitive", "Manager", "MarlaSchr", "", false},
		{"unknown user", "admin", "admin", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := Authenticate(tt.username, tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestRoleHome(t *testing.T) {
	assert.Equal(t, "/manager", RoleManager.Home())
	assert.Equal(t, "/cashier", RoleCashier.Home())
	assert.Equal(t, "/login", Role("").Home())
	assert.False(t, Role("admin").Valid())
}
