// Package model defines domain entities for the application.
package model

import "time"

// User is the root against which exercises are logged.
// Username is unique and never changes after creation.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}
