package handlers

import (
	"fmt"

	"github.com/google/uuid"
)

// userUUID decodes the "userId" local set by RequireAdmin. Locals survive the
// websocket upgrade, so this serves both fiber and websocket handlers.
func userUUID(v any) (uuid.UUID, error) {
	switch t := v.(type) {
	case nil:
		return uuid.Nil, fmt.Errorf("unauthorized")
	case uuid.UUID:
		return t, nil
	case string:
		return uuid.Parse(t)
	case []byte:
		return uuid.ParseBytes(t)
	default:
		return uuid.Nil, fmt.Errorf("invalid userId type: %T", v)
	}
}
