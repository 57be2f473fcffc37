package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeter.db")

	database, err := InitDB(path)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO greetings (workflow_id, greeting, name, result, completed_at) VALUES (?, ?, ?, ?, ?)`,
		"wf-1", "Hello", "World", "Hello, World!", time.Now().UTC(),
	)
	require.NoError(t, err)

	// Re-opening an existing database must not fail or lose data.
	again, err := InitDB(path)
	require.NoError(t, err)
	defer again.Close()

	var count int
	require.NoError(t, again.QueryRow(`SELECT COUNT(*) FROM greetings`).Scan(&count))
	require.Equal(t, 1, count)
}
