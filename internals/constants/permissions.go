package constants

// Resource / action vocabulary for the capability table. Every handler goes
// through Can() (directly or via the RequirePermission middleware) instead of
// comparing role literals inline.

const (
	ResFlats         = "flats"
	ResUsers         = "users"
	ResImports       = "imports"
	ResAmenities     = "amenities"
	ResBookings      = "bookings"
	ResExpenses      = "expenses"
	ResBudgets       = "budgets"
	ResAnnouncements = "announcements"
	ResComplaints    = "complaints"
	ResDashboard     = "dashboard"
)

const (
	ActionRead    = "read"
	ActionReadAll = "read_all" // list records beyond the caller's own
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"  // expense approval / revoke
	ActionReview  = "review"   // booking confirm/reject/complete/pay
)

// capabilities maps resource → action → allowed roles. Ownership-scoped
// allowances (a resident cancelling their own booking, editing their own
// complaint) are handled next to the ownership check in the handler; this
// table covers pure role gates.
var capabilities = map[string]map[string][]string{
	ResFlats: {
		ActionRead:   AllRoles,
		ActionCreate: AdminOnly,
		ActionUpdate: AdminOnly,
		ActionDelete: AdminOnly,
	},
	ResUsers: {
		ActionRead:   AdminOnly,
		ActionCreate: AdminOnly,
		ActionUpdate: AdminOnly,
		ActionDelete: AdminOnly,
	},
	ResImports: {
		ActionRead:   AdminOnly,
		ActionCreate: AdminOnly,
	},
	ResAmenities: {
		ActionRead:   AllRoles,
		ActionCreate: CommitteeAndAbove,
		ActionUpdate: CommitteeAndAbove,
		ActionDelete: AdminOnly,
	},
	ResBookings: {
		ActionRead:    AllRoles,
		ActionReadAll: CommitteeAndAbove,
		ActionCreate:  AllRoles,
		ActionUpdate:  AllRoles, // cancellation; ownership-restricted in the service
		ActionReview:  CommitteeAndAbove,
	},
	ResExpenses: {
		ActionRead:    AllRoles,
		ActionCreate:  CommitteeAndAbove,
		ActionUpdate:  CommitteeAndAbove,
		ActionDelete:  AdminOnly,
		ActionApprove: AdminOnly,
	},
	ResBudgets: {
		ActionRead:   CommitteeAndAbove,
		ActionCreate: CommitteeAndAbove,
		ActionUpdate: CommitteeAndAbove,
		ActionDelete: CommitteeAndAbove,
	},
	ResAnnouncements: {
		ActionRead:   AllRoles,
		ActionCreate: CommitteeAndAbove,
		ActionUpdate: CommitteeAndAbove,
		ActionDelete: CommitteeAndAbove,
	},
	ResComplaints: {
		ActionRead:    AllRoles,
		ActionReadAll: CommitteeAndAbove,
		ActionCreate:  AllRoles,
		ActionUpdate:  AllRoles, // ownership-restricted in the handler
		ActionDelete:  AdminOnly,
	},
	ResDashboard: {
		ActionRead: AllRoles,
	},
}

// Can reports whether the given role may perform action on resource.
// Unknown resources/actions deny.
func Can(role, resource, action string) bool {
	actions, ok := capabilities[resource]
	if !ok {
		return false
	}
	allowed, ok := actions[action]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
