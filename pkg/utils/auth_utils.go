package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextAccountIDKey = "account_id"

// CurrentAccountID reads the authenticated account id that the JWT
// middleware stored on the request context. A missing or malformed id
// means the request never passed authentication, not that the account
// does not exist.
func CurrentAccountID(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetString(ContextAccountIDKey)
	if raw == "" {
		return uuid.Nil, ErrUnauthenticated
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrUnauthenticated
	}
	return id, nil
}
