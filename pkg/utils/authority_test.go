package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoles(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@growstory.io")

	assert.Equal(t, []string{"ADMIN", "USER"}, CreateRoles("admin@growstory.io"))
	assert.Equal(t, []string{"USER"}, CreateRoles("user@growstory.io"))
	assert.Equal(t, []string{"USER"}, CreateRoles(""))
}
