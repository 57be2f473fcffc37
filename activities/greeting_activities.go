// activities/greeting_activities.go
package activities

import (
	"context"
	"fmt"

	"greeter/shared"

	"go.temporal.io/sdk/activity"
)

const (
	ActivityName_ComposeGreeting = "ComposeGreetingActivity"
	ActivityName_RecordGreeting  = "RecordGreetingActivity"
)

type GreetingActivities struct{}

func NewGreetingActivities() *GreetingActivities {
	return &GreetingActivities{}
}

// ComposeGreetingActivity builds the greeting string. Activities may do
// side-effecting work; this one only logs.
func (a *GreetingActivities) ComposeGreetingActivity(ctx context.Context, input shared.GreetingInput) (string, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Composing greeting", "Greeting", input.Greeting, "Name", input.Name)
	return fmt.Sprintf("%s, %s!", input.Greeting, input.Name), nil
}
