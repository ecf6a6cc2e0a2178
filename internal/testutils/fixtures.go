package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"larpit/larp-directory/internal/model/larp"
	"larpit/larp-directory/internal/model/user"
)

// CreateTestUser creates a user with unique email, default role verified
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	testUser := &user.User{
		DisplayName: fmt.Sprintf("test_user_%s", uniqueID),
		Email:       fmt.Sprintf("test_%s@example.com", uniqueID),
		Role:        user.RoleVerified,
		CreatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithRole sets the role
func WithRole(role user.Role) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *user.User) {
		u.Email = email
	}
}

// CreateTestLarp creates a larp listing with a unique name
func CreateTestLarp(db *gorm.DB, opts ...LarpOption) *larp.Larp {
	uniqueID := uuid.New().String()

	testLarp := &larp.Larp{
		Name:      fmt.Sprintf("Test Larp %s", uniqueID),
		Language:  larp.LanguageFinnish,
		Openness:  larp.OpennessOpen,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(testLarp)
	}

	if err := db.Create(testLarp).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test larp: %v", err))
	}

	return testLarp
}

// LarpOption configures test larp
type LarpOption func(*larp.Larp)

// WithName sets the larp name
func WithName(name string) LarpOption {
	return func(l *larp.Larp) {
		l.Name = name
	}
}

// WithAlias sets the larp alias
func WithAlias(alias string) LarpOption {
	return func(l *larp.Larp) {
		l.Alias = &alias
	}
}

// AddRelation links a user to a larp with the given role
func AddRelation(db *gorm.DB, larpID, userID uint, role larp.RelationRole) {
	if err := db.Create(&larp.RelatedUser{
		LarpID:    larpID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test relation: %v", err))
	}
}
