package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"greeter/db"
	"greeter/handlers"
	"greeter/shared"
	"greeter/temporal"
	"greeter/workflows"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
)

func main() {
	// Load Env Vars (.env takes precedence over system env)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	temporalAddr := os.Getenv("TEMPORAL_ADDRESS")
	if temporalAddr == "" {
		temporalAddr = "localhost:7233"
	}
	taskQueue := os.Getenv("TEMPORAL_TASK_QUEUE")
	if taskQueue == "" {
		taskQueue = shared.TaskQueue
	}
	dbPath := os.Getenv("GREETER_DB")
	if dbPath == "" {
		dbPath = "./greeter.db"
	}

	// Init Temporal Client. Cannot do anything without the server, so a
	// dial failure is fatal.
	temporalClient, err := temporal.NewClient(temporalAddr, log.New(os.Stdout, "TEMPORAL_CLIENT: ", log.LstdFlags))
	if err != nil {
		log.Fatalf("Unable to create Temporal client: %v", err)
	}
	defer temporalClient.Close()

	// Init greeting history store
	database, err := db.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Unable to initialize database: %v", err)
	}
	defer database.Close()

	// Init and start Temporal Worker. Stop is deferred so the polling
	// session is deregistered on every exit path.
	w := temporal.NewWorker(temporalClient, taskQueue, database)
	if err := w.Start(); err != nil {
		log.Fatalf("Unable to start Temporal worker: %v", err)
	}
	defer w.Stop()

	// Run the hello example once before serving HTTP.
	result, err := runExampleGreeting(temporalClient, taskQueue)
	if err != nil {
		log.Fatalf("Example greeting workflow failed: %v", err)
	}
	log.Printf("Example greeting result: %s", result)

	// Init Router and Handlers
	r := chi.NewRouter()
	r.Use(middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	handlers.NewHandler(temporalClient, database, taskQueue).RegisterRoutes(r)

	// Start HTTP Server
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}
	serverAddr := ":" + port
	log.Printf("Starting HTTP server on %s", serverAddr)
	if err := http.ListenAndServe(serverAddr, r); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

// runExampleGreeting starts one GreetingWorkflow under the well-known
// example workflow ID and blocks for its result. A second concurrent run
// under the same ID is rejected by the server; that error surfaces here.
func runExampleGreeting(c client.Client, taskQueue string) (string, error) {
	workflowOptions := client.StartWorkflowOptions{
		ID:        shared.ExampleWorkflowID,
		TaskQueue: taskQueue,
	}
	input := shared.GreetingInput{Greeting: "Hello", Name: "World"}

	we, err := c.ExecuteWorkflow(context.Background(), workflowOptions, workflows.GreetingWorkflow, input)
	if err != nil {
		return "", err
	}
	log.Printf("Started example workflow | WorkflowID: %s | RunID: %s", we.GetID(), we.GetRunID())

	var result string
	if err := we.Get(context.Background(), &result); err != nil {
		return "", err
	}
	return result, nil
}
