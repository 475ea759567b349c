package logging

import "github.com/google/uuid"

// GenerateRequestID generates a unique request ID for correlating the log
// records of one administrative operation (e.g., a schema load).
func GenerateRequestID() string {
	return uuid.NewString()
}
