// activities/history_activities.go
package activities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"greeter/shared"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"go.temporal.io/sdk/activity"
)

// HistoryActivities persists completed greetings. The DB handle is passed in
// explicitly so multiple worker instances can coexist in one process.
type HistoryActivities struct {
	DB *sql.DB
}

func NewHistoryActivities(db *sql.DB) *HistoryActivities {
	return &HistoryActivities{DB: db}
}

// RecordGreetingActivity upserts the finished greeting keyed by workflow ID,
// so a retried record for the same execution does not duplicate rows.
func (a *HistoryActivities) RecordGreetingActivity(ctx context.Context, rec shared.GreetingRecord) error {
	logger := activity.GetLogger(ctx)
	if a.DB == nil {
		return errors.New("history database connection is not initialized")
	}

	query := `
		INSERT INTO greetings (workflow_id, greeting, name, result, completed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(workflow_id) DO UPDATE SET
			greeting     = excluded.greeting,
			name         = excluded.name,
			result       = excluded.result,
			completed_at = excluded.completed_at;
	`
	_, err := a.DB.ExecContext(ctx, query, rec.WorkflowID, rec.Greeting, rec.Name, rec.Result, rec.CompletedAt.UTC())
	if err != nil {
		logger.Error("Failed to record greeting", "WorkflowID", rec.WorkflowID, "Error", err)
		return fmt.Errorf("failed to record greeting: %w", err)
	}

	logger.Info("Recorded greeting", "WorkflowID", rec.WorkflowID)
	return nil
}
