package moderation

import (
	"testing"

	"larpit/larp-directory/internal/model/larp"
	modmodel "larpit/larp-directory/internal/model/moderation"
	"larpit/larp-directory/internal/model/user"
)

// TestInitialCreateStatus 新建条目请求的初始状态矩阵
func TestInitialCreateStatus(t *testing.T) {
	tests := []struct {
		name      string
		submitter *user.User
		expected  modmodel.Status
	}{
		{"anonymous", nil, modmodel.StatusPendingVerification},
		{"not_verified", &user.User{ID: 1, Role: user.RoleNotVerified}, modmodel.StatusVerified},
		{"verified", &user.User{ID: 1, Role: user.RoleVerified}, modmodel.StatusAutoApproved},
		{"moderator", &user.User{ID: 1, Role: user.RoleModerator}, modmodel.StatusApproved},
		{"admin", &user.User{ID: 1, Role: user.RoleAdmin}, modmodel.StatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InitialCreateStatus(tt.submitter); got != tt.expected {
				t.Errorf("InitialCreateStatus() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestInitialEditStatus 编辑/认领请求的初始状态矩阵
func TestInitialEditStatus(t *testing.T) {
	verified := &user.User{ID: 1, Role: user.RoleVerified}
	moderator := &user.User{ID: 2, Role: user.RoleModerator}

	tests := []struct {
		name      string
		action    modmodel.Action
		submitter *user.User
		relations []larp.RelationRole
		expected  modmodel.Status
		ok        bool
	}{
		{"anonymous update", modmodel.ActionUpdate, nil, nil, modmodel.StatusPendingVerification, true},
		{"anonymous claim denied", modmodel.ActionClaim, nil, nil, "", false},
		{"moderator update", modmodel.ActionUpdate, moderator, nil, modmodel.StatusAutoApproved, true},
		{"editor relation", modmodel.ActionUpdate, verified, []larp.RelationRole{larp.RelationEditor}, modmodel.StatusAutoApproved, true},
		{"game master relation", modmodel.ActionUpdate, verified, []larp.RelationRole{larp.RelationGameMaster}, modmodel.StatusAutoApproved, true},
		{"player relation no privilege", modmodel.ActionUpdate, verified, []larp.RelationRole{larp.RelationPlayer}, modmodel.StatusVerified, true},
		{"no relation", modmodel.ActionUpdate, verified, nil, modmodel.StatusVerified, true},
		{"claim by verified user", modmodel.ActionClaim, verified, nil, modmodel.StatusVerified, true},
		{"mixed relations pick privileged", modmodel.ActionUpdate, verified,
			[]larp.RelationRole{larp.RelationPlayer, larp.RelationEditor}, modmodel.StatusAutoApproved, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := InitialEditStatus(tt.action, tt.submitter, tt.relations)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("InitialEditStatus() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestStatusTerminal 终态判定
func TestStatusTerminal(t *testing.T) {
	terminal := []modmodel.Status{modmodel.StatusApproved, modmodel.StatusRejected, modmodel.StatusWithdrawn}
	open := []modmodel.Status{modmodel.StatusPendingVerification, modmodel.StatusVerified, modmodel.StatusAutoApproved}

	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%q should be terminal", s)
		}
	}
	for _, s := range open {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
}
