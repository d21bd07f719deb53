package services

import (
	"arbapi/internal/store"
)

// Store-level sentinels are part of the service contract: handlers match
// on them to pick response shapes, and the services here never wrap them
// out of recognition.
var (
	ErrStoreNotFound = store.ErrStoreNotFound
	ErrRunNotFound   = store.ErrRunNotFound
	ErrStatusMissing = store.ErrStatusMissing
)
