package user

import (
	"testing"

	model "larpit/larp-directory/internal/model/user"
	"larpit/larp-directory/internal/testutils"
	"larpit/larp-directory/pkg/response"
)

func setupUserService(t *testing.T) (*Service, *model.User, *model.User) {
	db := testutils.SetupTestDB(t)
	service := NewService(NewRepository(db))
	admin := testutils.CreateTestUser(db, testutils.WithRole(model.RoleAdmin))
	regular := testutils.CreateTestUser(db)
	return service, admin, regular
}

// TestListUsersRequiresAdmin 用户列表只对管理员开放
func TestListUsersRequiresAdmin(t *testing.T) {
	service, admin, regular := setupUserService(t)

	if _, bizErr := service.ListUsers(regular, "", 1, 20); bizErr == nil {
		t.Fatal("regular user must not list users")
	} else if bizErr.Code != response.Forbidden {
		t.Errorf("error code = %d, want Forbidden", bizErr.Code)
	}

	result, bizErr := service.ListUsers(admin, "", 1, 20)
	if bizErr != nil {
		t.Fatalf("ListUsers: %v", bizErr.Msg)
	}
	if result.Total < 2 {
		t.Errorf("Total = %d, want at least 2", result.Total)
	}

	// 角色过滤
	admins, bizErr := service.ListUsers(admin, model.RoleAdmin, 1, 20)
	if bizErr != nil {
		t.Fatalf("ListUsers filtered: %v", bizErr.Msg)
	}
	for _, u := range admins.Users {
		if u.Role != model.RoleAdmin {
			t.Errorf("filter leaked role %q", u.Role)
		}
	}
}

// TestChangeRole 角色修改与自改保护
func TestChangeRole(t *testing.T) {
	service, admin, regular := setupUserService(t)

	updated, bizErr := service.ChangeRole(admin, regular.ID, model.RoleModerator)
	if bizErr != nil {
		t.Fatalf("ChangeRole: %v", bizErr.Msg)
	}
	if updated.Role != model.RoleModerator {
		t.Errorf("Role = %q, want moderator", updated.Role)
	}

	// 管理员不能改自己的角色
	if _, bizErr := service.ChangeRole(admin, admin.ID, model.RoleVerified); bizErr == nil {
		t.Fatal("admin must not change own role")
	} else if bizErr.Code != response.Forbidden {
		t.Errorf("error code = %d, want Forbidden", bizErr.Code)
	}

	// 非管理员无权修改
	if _, bizErr := service.ChangeRole(regular, admin.ID, model.RoleVerified); bizErr == nil {
		t.Fatal("non-admin must not change roles")
	}

	// 未知角色
	if _, bizErr := service.ChangeRole(admin, regular.ID, "owner"); bizErr == nil {
		t.Fatal("unknown role should be rejected")
	} else if bizErr.Code != response.InvalidParameter {
		t.Errorf("error code = %d, want InvalidParameter", bizErr.Code)
	}

	// 目标不存在
	if _, bizErr := service.ChangeRole(admin, 999999, model.RoleVerified); bizErr == nil {
		t.Fatal("missing target should fail")
	} else if bizErr.Code != response.NotFound {
		t.Errorf("error code = %d, want NotFound", bizErr.Code)
	}
}
