package store

import "errors"

var (
	// ErrStoreNotFound means the database file does not exist at open
	// time. Fatal; propagated unmodified, no fallback to an empty store.
	ErrStoreNotFound = errors.New("trading store not found")

	// ErrRunNotFound means a well-formed run_id has no metadata row.
	ErrRunNotFound = errors.New("run not found")

	// ErrStatusMissing means the runtime-status singleton has never been
	// initialized, i.e. a read happened before any write in the store's
	// lifetime. Reads do not auto-create the row.
	ErrStatusMissing = errors.New("runtime status row missing")
)
