package entity

import "time"

// User is an identity record. PasswordHash is a bcrypt hash; the plaintext is
// never stored and the hash is never serialized into API responses.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
