package permission

import (
	"testing"

	"larpit/larp-directory/internal/model/user"
)

func userWithRole(role user.Role) *user.User {
	return &user.User{ID: 1, Role: role}
}

// TestCanModerate 测试审核权限判定
func TestCanModerate(t *testing.T) {
	tests := []struct {
		name     string
		u        *user.User
		expected bool
	}{
		{"nil user", nil, false},
		{"not_verified", userWithRole(user.RoleNotVerified), false},
		{"verified", userWithRole(user.RoleVerified), false},
		{"moderator", userWithRole(user.RoleModerator), true},
		{"admin", userWithRole(user.RoleAdmin), true},
		{"unknown role", userWithRole("owner"), false},
		{"empty role", userWithRole(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanModerate(tt.u); got != tt.expected {
				t.Errorf("CanModerate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestCanManageUsers 测试用户管理权限判定
func TestCanManageUsers(t *testing.T) {
	tests := []struct {
		name     string
		u        *user.User
		expected bool
	}{
		{"nil user", nil, false},
		{"not_verified", userWithRole(user.RoleNotVerified), false},
		{"verified", userWithRole(user.RoleVerified), false},
		{"moderator", userWithRole(user.RoleModerator), false},
		{"admin", userWithRole(user.RoleAdmin), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManageUsers(tt.u); got != tt.expected {
				t.Errorf("CanManageUsers() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestCanCreateListingWithoutPreModeration 测试免前置审核判定
func TestCanCreateListingWithoutPreModeration(t *testing.T) {
	tests := []struct {
		name     string
		u        *user.User
		expected bool
	}{
		{"nil user", nil, false},
		{"not_verified", userWithRole(user.RoleNotVerified), false},
		{"verified", userWithRole(user.RoleVerified), true},
		{"moderator", userWithRole(user.RoleModerator), true},
		{"admin", userWithRole(user.RoleAdmin), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreateListingWithoutPreModeration(tt.u); got != tt.expected {
				t.Errorf("CanCreateListingWithoutPreModeration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestCanCreateListingWithoutPostModeration 测试免事后抽查判定
func TestCanCreateListingWithoutPostModeration(t *testing.T) {
	tests := []struct {
		name     string
		u        *user.User
		expected bool
	}{
		{"nil user", nil, false},
		{"verified", userWithRole(user.RoleVerified), false},
		{"moderator", userWithRole(user.RoleModerator), true},
		{"admin", userWithRole(user.RoleAdmin), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreateListingWithoutPostModeration(tt.u); got != tt.expected {
				t.Errorf("CanCreateListingWithoutPostModeration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// TestCanEditPages 内容页编辑权限与审核权限共用同一道门
func TestCanEditPages(t *testing.T) {
	if CanEditPages(userWithRole(user.RoleVerified)) {
		t.Error("verified user should not edit pages")
	}
	if !CanEditPages(userWithRole(user.RoleModerator)) {
		t.Error("moderator should edit pages")
	}
}
