// Package uuid generates transaction identifiers.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a fresh UUIDv7 string. Version 7 ids embed a millisecond
// timestamp, so ids minted later sort after earlier ones.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random source failure; fall back to a v4 id, still unique.
		return googleuuid.New().String()
	}
	return id.String()
}
