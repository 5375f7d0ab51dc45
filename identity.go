package eventcore

import "github.com/google/uuid"

// newIdentity mints a UUIDv7 identity for a bus, registration, or event,
// falling back to UUIDv4 if the system clock source needed for v7 is
// unavailable.
func newIdentity() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
