// temporal/client.go
package temporal

import (
	"log"

	"go.temporal.io/sdk/client"
)

// NewClient dials the Temporal frontend at hostPort. The caller owns the
// connection and must Close it; a dial failure is fatal to startup and is
// returned rather than retried here.
func NewClient(hostPort string, logger *log.Logger) (client.Client, error) {
	if hostPort == "" {
		hostPort = client.DefaultHostPort // localhost:7233
	}
	c, err := client.Dial(client.Options{
		HostPort: hostPort,
		Logger:   NewTemporalLogger(logger),
	})
	if err != nil {
		log.Printf("Failed to create Temporal client: %v", err)
		return nil, err
	}
	log.Println("Temporal client connected successfully.")
	return c, nil
}
