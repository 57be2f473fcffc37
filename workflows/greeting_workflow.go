// workflows/greeting_workflow.go
package workflows

import (
	"time"

	"greeter/activities"
	"greeter/shared"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// GreetingWorkflow runs a single compose activity and returns its result.
// Everything in here must stay replay-deterministic: time comes from
// workflow.Now, all real work goes through activities.
func GreetingWorkflow(ctx workflow.Context, input shared.GreetingInput) (string, error) {
	// Attempts are bounded so a stuck activity surfaces as a timeout
	// failure instead of retrying forever.
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: shared.ComposeGreetingTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	logger := workflow.GetLogger(ctx)
	logger.Info("GreetingWorkflow started", "Greeting", input.Greeting, "Name", input.Name)
	workflowID := workflow.GetInfo(ctx).WorkflowExecution.ID

	var result string
	err := workflow.ExecuteActivity(ctx, activities.ActivityName_ComposeGreeting, input).Get(ctx, &result)
	if err != nil {
		logger.Error("Compose greeting activity failed.", "Error", err)
		return "", err
	}

	// History is bookkeeping; a failed record must not fail the greeting.
	record := shared.GreetingRecord{
		WorkflowID:  workflowID,
		Greeting:    input.Greeting,
		Name:        input.Name,
		Result:      result,
		CompletedAt: workflow.Now(ctx),
	}
	if err := workflow.ExecuteActivity(ctx, activities.ActivityName_RecordGreeting, record).Get(ctx, nil); err != nil {
		logger.Warn("Failed to record greeting history, continuing.", "Error", err)
	}

	logger.Info("GreetingWorkflow completed.", "Result", result)
	return result, nil
}
