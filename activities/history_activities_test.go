package activities

import (
	"path/filepath"
	"testing"
	"time"

	"greeter/db"
	"greeter/shared"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"
)

func TestRecordGreetingActivity(t *testing.T) {
	database, err := db.InitDB(filepath.Join(t.TempDir(), "greeter.db"))
	require.NoError(t, err)
	defer database.Close()

	ts := testsuite.WorkflowTestSuite{}
	env := ts.NewTestActivityEnvironment()
	acts := NewHistoryActivities(database)
	env.RegisterActivityWithOptions(acts.RecordGreetingActivity, activity.RegisterOptions{Name: ActivityName_RecordGreeting})

	completedAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	rec := shared.GreetingRecord{
		WorkflowID:  "wf-1",
		Greeting:    "Hello",
		Name:        "World",
		Result:      "Hello, World!",
		CompletedAt: completedAt,
	}

	_, err = env.ExecuteActivity(acts.RecordGreetingActivity, rec)
	require.NoError(t, err)

	var got shared.GreetingRecord
	err = database.QueryRow(
		`SELECT workflow_id, greeting, name, result, completed_at FROM greetings WHERE workflow_id = ?`, "wf-1",
	).Scan(&got.WorkflowID, &got.Greeting, &got.Name, &got.Result, &got.CompletedAt)
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", got.Result)
	require.True(t, got.CompletedAt.Equal(completedAt))

	// Recording again for the same workflow ID updates in place.
	rec.Result = "Hello again, World!"
	_, err = env.ExecuteActivity(acts.RecordGreetingActivity, rec)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM greetings`).Scan(&count))
	require.Equal(t, 1, count)

	require.NoError(t, database.QueryRow(
		`SELECT result FROM greetings WHERE workflow_id = ?`, "wf-1",
	).Scan(&got.Result))
	require.Equal(t, "Hello again, World!", got.Result)
}

func TestRecordGreetingActivityNilDB(t *testing.T) {
	ts := testsuite.WorkflowTestSuite{}
	env := ts.NewTestActivityEnvironment()
	acts := NewHistoryActivities(nil)
	env.RegisterActivityWithOptions(acts.RecordGreetingActivity, activity.RegisterOptions{Name: ActivityName_RecordGreeting})

	_, err := env.ExecuteActivity(acts.RecordGreetingActivity, shared.GreetingRecord{WorkflowID: "wf-2"})
	require.Error(t, err)
}
