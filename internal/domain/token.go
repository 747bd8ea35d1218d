package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque bearer credential minted at login. It is never
// refreshed or revoked; it expires naturally and is removed when the
// owning user is deleted.
type Token struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID  uint      `json:"userId" gorm:"not null"`
	User    User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Created time.Time `json:"created" gorm:"autoCreateTime"`
}

// ExpiresAt returns the instant after which the token is no longer honored.
func (t *Token) ExpiresAt(ttl time.Duration) time.Time {
	return t.Created.Add(ttl)
}
