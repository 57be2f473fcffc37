// shared/types.go
package shared

import "time"

// TaskQueue must match between the worker registering the greeting workflow
// and the client starting executions; a mismatch hangs silently.
const TaskQueue = "hello-activity-task-queue"

// ExampleWorkflowID is the identifier used by the one-shot example run in
// main. The server rejects a second concurrent execution under the same ID.
const ExampleWorkflowID = "hello-activity-workflow-id"

// ComposeGreetingTimeout bounds the compose activity start-to-close.
const ComposeGreetingTimeout = 10 * time.Second

// GreetingInput is the input to both the workflow and the compose activity.
// Fields are append-only once workflows may be in flight: the server can
// replay historical calls against newer code.
type GreetingInput struct {
	Greeting string
	Name     string
}

// GreetingRecord is what the workflow hands to the history activity after
// the greeting has been composed.
type GreetingRecord struct {
	WorkflowID  string
	Greeting    string
	Name        string
	Result      string
	CompletedAt time.Time
}
