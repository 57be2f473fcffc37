// handlers/handlers.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"greeter/shared"
	"greeter/workflows"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.temporal.io/sdk/client"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	TemporalClient client.Client
	DB             *sql.DB
	TaskQueue      string
}

func NewHandler(tc client.Client, db *sql.DB, taskQueue string) *Handler {
	return &Handler{
		TemporalClient: tc,
		DB:             db,
		TaskQueue:      taskQueue,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/greetings", h.CreateGreetingHandler)
	r.Get("/greetings", h.ListGreetingsHandler)
	r.Get("/greetings/{workflowID}", h.GetGreetingHandler)
}

type createGreetingRequest struct {
	Greeting string `json:"greeting"`
	Name     string `json:"name"`
}

type createGreetingResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
	Result     string `json:"result"`
}

type greetingRecordResponse struct {
	WorkflowID  string    `json:"workflow_id"`
	Greeting    string    `json:"greeting"`
	Name        string    `json:"name"`
	Result      string    `json:"result"`
	CompletedAt time.Time `json:"completed_at"`
}

// CreateGreetingHandler starts a GreetingWorkflow and blocks until the
// result is available. Each request gets its own workflow ID, so concurrent
// requests never collide on the server's ID-uniqueness check.
func (h *Handler) CreateGreetingHandler(w http.ResponseWriter, r *http.Request) {
	var req createGreetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Greeting == "" || req.Name == "" {
		http.Error(w, "Both greeting and name are required", http.StatusBadRequest)
		return
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:        "greeting-" + uuid.NewString(),
		TaskQueue: h.TaskQueue,
	}
	input := shared.GreetingInput{Greeting: req.Greeting, Name: req.Name}

	we, err := h.TemporalClient.ExecuteWorkflow(r.Context(), workflowOptions, workflows.GreetingWorkflow, input)
	if err != nil {
		log.Printf("Error starting greeting workflow: %v", err)
		http.Error(w, "Failed to start greeting workflow", http.StatusInternalServerError)
		return
	}
	log.Printf("Started workflow | WorkflowID: %s | RunID: %s", we.GetID(), we.GetRunID())

	var result string
	if err := we.Get(r.Context(), &result); err != nil {
		log.Printf("Greeting workflow %s failed: %v", we.GetID(), err)
		http.Error(w, "Greeting workflow failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, createGreetingResponse{
		WorkflowID: we.GetID(),
		RunID:      we.GetRunID(),
		Result:     result,
	})
}

// ListGreetingsHandler returns recorded greetings, newest first.
func (h *Handler) ListGreetingsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := h.DB.QueryContext(r.Context(),
		`SELECT workflow_id, greeting, name, result, completed_at FROM greetings ORDER BY completed_at DESC`)
	if err != nil {
		log.Printf("ListGreetingsHandler: query error: %v", err)
		http.Error(w, "Failed to read greeting history", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	records := []greetingRecordResponse{}
	for rows.Next() {
		var rec greetingRecordResponse
		if err := rows.Scan(&rec.WorkflowID, &rec.Greeting, &rec.Name, &rec.Result, &rec.CompletedAt); err != nil {
			log.Printf("ListGreetingsHandler: scan error: %v", err)
			http.Error(w, "Failed to read greeting history", http.StatusInternalServerError)
			return
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		log.Printf("ListGreetingsHandler: rows error: %v", err)
		http.Error(w, "Failed to read greeting history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// GetGreetingHandler returns a single recorded greeting by workflow ID.
func (h *Handler) GetGreetingHandler(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")
	if workflowID == "" {
		http.Error(w, "Missing workflow ID", http.StatusBadRequest)
		return
	}

	var rec greetingRecordResponse
	err := h.DB.QueryRowContext(r.Context(),
		`SELECT workflow_id, greeting, name, result, completed_at FROM greetings WHERE workflow_id = ?`,
		workflowID,
	).Scan(&rec.WorkflowID, &rec.Greeting, &rec.Name, &rec.Result, &rec.CompletedAt)
	if err == sql.ErrNoRows {
		http.Error(w, "No greeting recorded for that workflow ID", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("GetGreetingHandler: query error for %s: %v", workflowID, err)
		http.Error(w, "Failed to read greeting history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}
