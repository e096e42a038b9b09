package auth

// Role is the only authorization unit: a session either carries one of the
// two roles or none.
type Role string

const (
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleManager || r == RoleCashier
}

// Home is the landing path after login.
func (r Role) Home() string {
	switch r {
	case RoleManager:
		return "/manager"
	case RoleCashier:
		return "/cashier"
	}
	return "/login"
}

type credential struct {
	password string
	role     Role
}

// credentials is the fixed login table. Passwords are compared in plaintext;
// this mirrors the shop's existing setup and is a known weakness.
var credentials = map[string]credential{
	"manager": {password: "MarlaSchr", role: RoleManager},
	"cashier": {password: "Glitz", role: RoleCashier},
}

// Authenticate returns the role for a matching username/password pair.
func Authenticate(username, password string) (Role, bool) {
	cred, ok := credentials[username]
	if !ok || cred.password != password {
		return "", false
	}
	return cred.role, true
}
