package entity

import "time"

// Category groups blog posts. Create-only: the API exposes no edit or delete.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
