// audit/model.go
package audit

import (
	"time"
)

// AuthEvent records one authentication decision made by the admin pipeline.
type AuthEvent struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	IP        string    `json:"ip"`
	Path      string    `json:"path"`
	Outcome   string    `json:"outcome"` // "authenticated", "denied_user_type"
	Fresh     bool      `json:"fresh"`   // true when this request triggered a cache-miss resolution
}
