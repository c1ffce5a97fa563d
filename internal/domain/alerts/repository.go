package alerts

import "context"

type Repository interface {
	// GetOrCreate inserts the alert unless a row with the same dedup key
	// (owner, type, priority, title, message, related_id) already exists.
	// The store enforces the key with a unique constraint, so two concurrent
	// evaluations cannot double-insert. Returns whether a row was created.
	GetOrCreate(ctx context.Context, alert *Alert) (bool, error)
	List(ctx context.Context, ownerID string, filter ListFilter) ([]Alert, error)
	GetByID(ctx context.Context, ownerID, alertID string) (*Alert, error)
	MarkRead(ctx context.Context, ownerID, alertID string) (bool, error)
	MarkAllRead(ctx context.Context, ownerID string) (int64, error)
	Deactivate(ctx context.Context, ownerID, alertID string) (bool, error)
	CountActive(ctx context.Context, ownerID string) (int64, error)
	CountUnread(ctx context.Context, ownerID string) (int64, error)
	CountByType(ctx context.Context, ownerID string) (map[Type]int64, error)
	CountByPriority(ctx context.Context, ownerID string) (map[Priority]int64, error)
}
