package api

import "github.com/google/uuid"

// NewRequestID returns the X-Request-Id value attached to mutating calls so
// the service can de-duplicate retried requests.
func NewRequestID() string {
	return uuid.NewString()
}
