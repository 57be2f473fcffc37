// temporal/worker.go
package temporal

import (
	"database/sql"

	"greeter/activities"
	"greeter/workflows"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

// NewWorker builds a worker on taskQueue with the greeting workflow and
// activities registered. The caller runs it via Start/Stop (or Run), so the
// polling session is scoped to the caller and torn down on every exit path.
func NewWorker(c client.Client, taskQueue string, db *sql.DB) worker.Worker {
	w := worker.New(c, taskQueue, worker.Options{})

	w.RegisterWorkflow(workflows.GreetingWorkflow)

	greetingActivities := activities.NewGreetingActivities()
	historyActivities := activities.NewHistoryActivities(db)

	w.RegisterActivityWithOptions(greetingActivities.ComposeGreetingActivity, activity.RegisterOptions{Name: activities.ActivityName_ComposeGreeting})
	w.RegisterActivityWithOptions(historyActivities.RecordGreetingActivity, activity.RegisterOptions{Name: activities.ActivityName_RecordGreeting})

	return w
}
