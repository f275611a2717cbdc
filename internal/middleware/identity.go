package middleware

import (
	"context"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	IdentityHeader = "X-User-ID"

	actorKey = "actor"
)

type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Identity resolves the X-User-ID header into the acting user and
// stores it in the request context. Requests without the header pass
// through anonymously; handlers that need an actor reject them.
func Identity(users UserDirectory) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(IdentityHeader)
		if id == "" {
			c.Next()
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			c.Next()
			return
		}

		c.Set(actorKey, user)
		c.Next()
	}
}

// Actor returns the authenticated user attached by Identity, if any.
func Actor(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
