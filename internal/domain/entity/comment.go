package entity

import "time"

// Comment is attached to a blog by any authenticated user.
type Comment struct {
	ID        string
	Content   string
	UserID    string
	BlogID    string
	CreatedAt time.Time
}

// CommentView is a Comment with the author reference populated.
type CommentView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    Ref       `json:"userId"`
	BlogID    string    `json:"blogId"`
	CreatedAt time.Time `json:"created_at"`
}
