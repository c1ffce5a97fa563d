package exports

import "context"

type Repository interface {
	Create(ctx context.Context, task *ExportTask) error
	GetByID(ctx context.Context, ownerID, taskID string) (*ExportTask, error)
	List(ctx context.Context, ownerID string, limit int) ([]ExportTask, error)
	// UpdateStatus transitions the task from one status to another and applies
	// extra column updates atomically. It is compare-and-swap on the current
	// status: the transition is refused (false) when the task moved meanwhile.
	UpdateStatus(ctx context.Context, taskID string, from, to Status, fields map[string]interface{}) (bool, error)
	CountByStatus(ctx context.Context, ownerID string) (map[Status]int64, error)
	CountByFormat(ctx context.Context, ownerID string) (map[Format]int64, error)
}
