package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is one saved memory. Image holds the backend-relative storage path,
// not the public URL.
type Post struct {
	ID         uuid.UUID `json:"id" db:"post_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Image      string    `json:"image" db:"image"`
	Title      string    `json:"title" db:"title"`
	Caption    string    `json:"caption" db:"caption"`
	MemoryWord string    `json:"memory_word" db:"memory_word"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
