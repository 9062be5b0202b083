package entity

import "time"

// Blog is a post owned by the user who created it. Ownership is equality of
// UserID with the authenticated identity.
type Blog struct {
	ID         string
	Title      string
	Content    string
	UserID     string
	CategoryID string
	CoverURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Ref is a populated reference: only the display fields of the referenced
// record, resolved at read time.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BlogView is a Blog with its author and category references populated and
// the like counter attached.
type BlogView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Ref       `json:"userId"`
	Category  Ref       `json:"categoryId"`
	CoverURL  string    `json:"cover_url,omitempty"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
