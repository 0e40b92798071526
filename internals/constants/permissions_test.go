package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanRoleGates(t *testing.T) {
	cases := []struct {
		role, resource, action string
		want                   bool
	}{
		// booking review is committee territory
		{RoleResident, ResBookings, ActionReview, false},
		{RoleTenant, ResBookings, ActionReview, false},
		{RoleCommittee, ResBookings, ActionReview, true},
		{RoleAdmin, ResBookings, ActionReview, true},

		// everyone can book and read
		{RoleTenant, ResBookings, ActionCreate, true},
		{RoleResident, ResAmenities, ActionRead, true},

		// expense approval is admin-only
		{RoleCommittee, ResExpenses, ActionApprove, false},
		{RoleAdmin, ResExpenses, ActionApprove, true},
		{RoleCommittee, ResExpenses, ActionCreate, true},
		{RoleResident, ResExpenses, ActionCreate, false},

		// user administration
		{RoleCommittee, ResUsers, ActionRead, false},
		{RoleAdmin, ResUsers, ActionDelete, true},

		// bulk import
		{RoleCommittee, ResImports, ActionCreate, false},
		{RoleAdmin, ResImports, ActionCreate, true},

		// budgets are invisible to residents
		{RoleResident, ResBudgets, ActionRead, false},
		{RoleCommittee, ResBudgets, ActionUpdate, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Can(tc.role, tc.resource, tc.action),
			"%s %s %s", tc.role, tc.resource, tc.action)
	}
}

func TestCanDeniesUnknown(t *testing.T) {
	assert.False(t, Can(RoleAdmin, "tenders", ActionRead))
	assert.False(t, Can(RoleAdmin, ResBookings, "export"))
	assert.False(t, Can("SUPERUSER", ResBookings, ActionRead))
	assert.False(t, Can("", "", ""))
}

func TestIsCommittee(t *testing.T) {
	assert.True(t, IsCommittee(RoleAdmin))
	assert.True(t, IsCommittee(RoleCommittee))
	assert.False(t, IsCommittee(RoleResident))
	assert.False(t, IsCommittee(RoleTenant))
}
