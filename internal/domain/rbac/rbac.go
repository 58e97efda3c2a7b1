package rbac

import "docflow-backend/internal/domain/user"

type Action string

const (
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionSubmit      Action = "submit"
	ActionReview      Action = "review"
	ActionApprove     Action = "approve"
	ActionSign        Action = "sign"
	ActionComment     Action = "comment"
	ActionViewArchive Action = "view_archive"
)

// capabilities is the single role × action table. Role membership is
/// necessary but not sufficient: ownership and current-actor checks are
// enforced by the workflow engine on top of this.
var capabilities = map[user.Role]map[Action]struct{}{
	user.RoleSubmitter: set(ActionCreate, ActionUpdate, ActionDelete, ActionSubmit, ActionComment, ActionViewArchive),
	user.RoleReviewer1: set(ActionReview, ActionComment, ActionViewArchive),
	user.RoleReviewer2: set(ActionReview, ActionComment, ActionViewArchive),
	user.RoleReviewer3: set(ActionReview, ActionComment, ActionViewArchive),
	user.RoleApprover:  set(ActionApprove, ActionComment, ActionViewArchive),
	user.RoleSigner:    set(ActionSign, ActionComment, ActionViewArchive),
	user.RoleAdmin: set(ActionCreate, ActionUpdate, ActionDelete, ActionSubmit,
		ActionReview, ActionApprove, ActionSign, ActionComment, ActionViewArchive),
}

func set(actions ...Action) map[Action]struct{} {
	m := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		m[a] = struct{}{}
	}
	return m
}

// Can reports whether role is allowed to perform action at all.
func Can(role user.Role, action Action) bool {
	_, ok := capabilities[role][action]
	return ok
}
