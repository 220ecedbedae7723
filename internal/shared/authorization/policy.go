package authorization

// Action names an operation a role may perform. The policy is a pure lookup
// built once at init; it is never mutated afterwards.
type Action string

const (
	ActionManageUsers        Action = "manage_users"
	ActionManageRoles        Action = "manage_roles"
	ActionManageReferenceData Action = "manage_reference_data"
	ActionManageAssignments  Action = "manage_assignments"
	ActionViewAllRequests    Action = "view_all_requests"
	ActionCreateRequest      Action = "create_request"
	ActionViewOwnRequests    Action = "view_my_requests"
	ActionViewAssigned       Action = "view_assigned_requests"
	ActionResolveRequest     Action = "update_request_status"
	ActionApproveRequests    Action = "approve_requests"
	ActionViewDeptRequests   Action = "view_dept_requests"
)

var rolePolicy = map[UserRole]map[Action]bool{
	RoleAdmin: {
		ActionManageUsers:         true,
		ActionManageRoles:         true,
		ActionManageReferenceData: true,
		ActionManageAssignments:   true,
		ActionViewAllRequests:     true,
	},
	RoleRequestor: {
		ActionCreateRequest:   true,
		ActionViewOwnRequests: true,
	},
	RoleTechnician: {
		ActionViewAssigned:   true,
		ActionResolveRequest: true,
	},
	RoleHOD: {
		ActionApproveRequests:  true,
		ActionViewDeptRequests: true,
	},
}

// Can reports whether role is permitted to perform action.
func Can(role UserRole, action Action) bool {
	perms, ok := rolePolicy[role]
	if !ok {
		return false
	}
	return perms[action]
}

// AnyCan reports whether any of the given role names is permitted to perform action.
func AnyCan(roles []string, action Action) bool {
	for _, r := range roles {
		if Can(UserRole(r), action) {
			return true
		}
	}
	return false
}
