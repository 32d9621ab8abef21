package utils

import (
	"os"
)

// CreateRoles derives the role set for a new account. The address in
// ADMIN_EMAIL gets the admin role on top of the user role.
func CreateRoles(email string) []string {
	if email != "" && email == os.Getenv("ADMIN_EMAIL") {
		return []string{"ADMIN", "USER"}
	}
	return []string{"USER"}
}
