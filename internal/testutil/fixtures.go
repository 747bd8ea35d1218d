package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	admin    bool
	password string
	mail     string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithName sets the unique user name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithAdmin sets the admin flag
func (b *UserBuilder) WithAdmin(admin bool) *UserBuilder {
	b.admin = admin
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithMail sets the mail address
func (b *UserBuilder) WithMail(mail string) *UserBuilder {
	b.mail = mail
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Name:         b.name,
		Admin:        b.admin,
		PasswordHash: string(hashedPassword),
		Mail:         b.mail,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// TokenBuilder creates session tokens with a builder pattern
type TokenBuilder struct {
	user    *domain.User
	created time.Time
}

// NewTokenBuilder creates a new TokenBuilder with default values
func NewTokenBuilder() *TokenBuilder {
	return &TokenBuilder{created: time.Now().UTC()}
}

// ForUser sets the owning user
func (b *TokenBuilder) ForUser(user *domain.User) *TokenBuilder {
	b.user = user
	return b
}

// CreatedAt backdates the token, useful for expiry tests
func (b *TokenBuilder) CreatedAt(created time.Time) *TokenBuilder {
	b.created = created
	return b
}

// Build creates the token in the database
func (b *TokenBuilder) Build(t *testing.T, db *gorm.DB) *domain.Token {
	t.Helper()

	if b.user == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.user = user
	}

	token := &domain.Token{
		ID:      uuid.New(),
		UserID:  b.user.ID,
		Created: b.created,
	}

	if err := db.Create(token).Error; err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	return token
}

// AdvertisingBuilder creates advertisings with a builder pattern
type AdvertisingBuilder struct {
	owner       *domain.User
	title       string
	description string
}

// NewAdvertisingBuilder creates a new AdvertisingBuilder with default values
func NewAdvertisingBuilder() *AdvertisingBuilder {
	return &AdvertisingBuilder{
		title: fmt.Sprintf("testadv_%s", uuid.New().String()[:8]),
	}
}

// WithOwner sets the owning user
func (b *AdvertisingBuilder) WithOwner(owner *domain.User) *AdvertisingBuilder {
	b.owner = owner
	return b
}

// WithTitle sets the unique title
func (b *AdvertisingBuilder) WithTitle(title string) *AdvertisingBuilder {
	b.title = title
	return b
}

// WithDescription sets the description
func (b *AdvertisingBuilder) WithDescription(description string) *AdvertisingBuilder {
	b.description = description
	return b
}

// Build creates the advertising in the database
func (b *AdvertisingBuilder) Build(t *testing.T, db *gorm.DB) *domain.Advertising {
	t.Helper()

	if b.owner == nil {
		owner, _ := NewUserBuilder().Build(t, db)
		b.owner = owner
	}

	adv := &domain.Advertising{
		OwnerID:     b.owner.ID,
		Title:       b.title,
		Description: b.description,
	}

	if err := db.Create(adv).Error; err != nil {
		t.Fatalf("failed to create advertising: %v", err)
	}

	return adv
}
