package moderation

import (
	"larpit/larp-directory/internal/model/larp"
	modmodel "larpit/larp-directory/internal/model/moderation"
	"larpit/larp-directory/internal/model/user"
	"larpit/larp-directory/internal/permission"
)

// 初始状态判定：纯函数，只计算值，不碰任何状态
// 结果随后交给生命周期组件落库

// InitialCreateStatus 计算新建条目请求的初始状态
//   - 匿名提交：一律先验证邮箱
//   - 免前置审核的用户：审核员/管理员完全跳过审核，其他直接发布但进入事后抽查队列
//   - 已登录但未建立信任的用户：身份已知（无需邮箱验证），等人工审核后才发布
func InitialCreateStatus(submitter *user.User) modmodel.Status {
	if submitter == nil {
		return modmodel.StatusPendingVerification
	}

	if permission.CanCreateListingWithoutPreModeration(submitter) {
		if permission.CanCreateListingWithoutPostModeration(submitter) {
			return modmodel.StatusApproved
		}
		return modmodel.StatusAutoApproved
	}

	return modmodel.StatusVerified
}

// InitialEditStatus 计算编辑/认领请求的初始状态
// relations 是提交人当前与目标条目的关系角色集合
// 返回 ok=false 表示没有提交权限，调用方必须拒绝该操作（这是授权拒绝，不是状态）
//   - 持有 editor/game_master 关系，或本身可审核：直接生效，
//     刻意落在 AUTO_APPROVED 而不是 APPROVED，让自助编辑留在抽查队列里
//   - 已登录但无特殊关系：等人工审核
//   - 匿名编辑：先验证邮箱；匿名认领无意义（认领必须挂到已知用户上），直接拒绝
func InitialEditStatus(action modmodel.Action, submitter *user.User, relations []larp.RelationRole) (modmodel.Status, bool) {
	if submitter == nil {
		if action == modmodel.ActionClaim {
			return "", false
		}
		return modmodel.StatusPendingVerification, true
	}

	if permission.CanModerate(submitter) {
		return modmodel.StatusAutoApproved, true
	}

	for _, rel := range relations {
		switch rel {
		case larp.RelationEditor, larp.RelationGameMaster:
			return modmodel.StatusAutoApproved, true
		case larp.RelationCreator, larp.RelationVolunteer, larp.RelationPlayer,
			larp.RelationFavorite, larp.RelationTeamMember:
			// 这些关系不带编辑特权
		}
	}

	return modmodel.StatusVerified, true
}
