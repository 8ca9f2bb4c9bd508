package repository

import "context"

// LocalStorageInterface is the string key/value store that survives restarts
// of the dashboard. It only ever holds the session identifier.
type LocalStorageInterface interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key string, value string) error
}
