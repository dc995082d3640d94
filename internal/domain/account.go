package domain

import (
	"sync"
	"time"
)

// Account represents a registered user of the platform.
// The password is stored in plaintext — this is a classroom demo
// with no real authentication.
type Account struct {
	ID        int64
	Username  string
	Password  string
	CreatedAt time.Time
	Mu        sync.Mutex // per-account lock serializing trade execution
}
