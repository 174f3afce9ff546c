package services_test

import (
	"testing"
	"time"

	"fieldops/internal/core/domain/model/directory"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignedOrder(t *testing.T) *order.Order {
	t.Helper()
	id, err := kernel.NewOrderID(2024, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(id,
		order.CustomerInfo{Name: "Hong", Phone: "010-1111-2222", Address: "Seoul"},
		order.ServiceDetails{Type: "AC Cleaning"}, "", time.Now())
	require.NoError(t, err)
	require.NoError(t, o.AssignPartner(directory.Partner{ID: "p1", Status: directory.Active}))
	require.NoError(t, o.AssignTechnician(directory.Technician{ID: "t1", PartnerID: "p1", Status: directory.Active}))
	return o
}

func TestRoleFromString(t *testing.T) {
	for _, name := range []string{"ADMIN", "OPERATOR", "PARTNER_ADMIN", "TECHNICIAN"} {
		role, err := services.RoleFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, role.String())
	}

	_, err := services.RoleFromString("SUPERUSER")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestActor_Validate(t *testing.T) {
	t.Run("valid actors", func(t *testing.T) {
		require.NoError(t, services.Actor{ID: "u1", Role: services.RoleAdmin}.Validate())
		require.NoError(t, services.Actor{ID: "u2", Role: services.RolePartnerAdmin, PartnerID: "p1"}.Validate())
		require.NoError(t, services.Actor{ID: "t1", Role: services.RoleTechnician}.Validate())
	})

	t.Run("missing id", func(t *testing.T) {
		require.ErrorIs(t, services.Actor{Role: services.RoleAdmin}.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("partner admin without partner id", func(t *testing.T) {
		require.ErrorIs(t,
			services.Actor{ID: "u2", Role: services.RolePartnerAdmin}.Validate(),
			errs.ErrValueIsRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		require.ErrorIs(t, services.Actor{ID: "u1", Role: "GUEST"}.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestAccessPolicy_AuthorizeCreate(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("head office may create", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeCreate(services.Actor{ID: "u1", Role: services.RoleAdmin}))
		require.NoError(t, policy.AuthorizeCreate(services.Actor{ID: "u2", Role: services.RoleOperator}))
	})

	t.Run("partner admin and technician may not create", func(t *testing.T) {
		require.ErrorIs(t,
			policy.AuthorizeCreate(services.Actor{ID: "u3", Role: services.RolePartnerAdmin, PartnerID: "p1"}),
			errs.ErrForbidden)
		require.ErrorIs(t,
			policy.AuthorizeCreate(services.Actor{ID: "t1", Role: services.RoleTechnician}),
			errs.ErrForbidden)
	})
}

func TestAccessPolicy_Authorize_RoleMatrix(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := assignedOrder(t)

	admin := services.Actor{ID: "u1", Role: services.RoleAdmin}
	operator := services.Actor{ID: "u2", Role: services.RoleOperator}
	partnerAdmin := services.Actor{ID: "u3", Role: services.RolePartnerAdmin, PartnerID: "p1"}
	technician := services.Actor{ID: "t1", Role: services.RoleTechnician}

	type check struct {
		actor   services.Actor
		op      services.Operation
		allowed bool
	}

	checks := []check{
		{admin, services.OpAssignPartner, true},
		{admin, services.OpAssignTechnician, true},
		{admin, services.OpCancel, true},
		{admin, services.OpComplete, false},
		{admin, services.OpStartWork, false},

		{operator, services.OpAssignPartner, true},
		{operator, services.OpMarkUnable, false},

		{partnerAdmin, services.OpAssignTechnician, true},
		{partnerAdmin, services.OpAssignPartner, false},
		{partnerAdmin, services.OpCancel, false},
		{partnerAdmin, services.OpComplete, false},

		{technician, services.OpConfirmAppointment, true},
		{technician, services.OpStartWork, true},
		{technician, services.OpComplete, true},
		{technician, services.OpMarkUnable, true},
		{technician, services.OpAssignPartner, false},
		{technician, services.OpAssignTechnician, false},
		{technician, services.OpCancel, false},
	}

	for _, c := range checks {
		err := policy.Authorize(c.actor, c.op, o)
		if c.allowed {
			require.NoError(t, err, "%s %s", c.actor.Role, c.op)
		} else {
			require.ErrorIs(t, err, errs.ErrForbidden, "%s %s", c.actor.Role, c.op)
		}
	}
}

func TestAccessPolicy_Authorize_Scoping(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := assignedOrder(t) // partner p1, technician t1

	t.Run("partner admin of another partner is forbidden, not not-found", func(t *testing.T) {
		foreign := services.Actor{ID: "u9", Role: services.RolePartnerAdmin, PartnerID: "p2"}

		err := policy.Authorize(foreign, services.OpAssignTechnician, o)

		require.ErrorIs(t, err, errs.ErrForbidden)
		require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("technician not assigned to the order is forbidden", func(t *testing.T) {
		other := services.Actor{ID: "t2", Role: services.RoleTechnician}

		require.ErrorIs(t, policy.Authorize(other, services.OpStartWork, o), errs.ErrForbidden)
	})

	t.Run("assigned technician passes scoping", func(t *testing.T) {
		assigned := services.Actor{ID: "t1", Role: services.RoleTechnician}

		require.NoError(t, policy.Authorize(assigned, services.OpStartWork, o))
	})
}

func TestAccessPolicy_CanRead(t *testing.T) {
	policy := services.NewAccessPolicy()
	o := assignedOrder(t)

	assert.True(t, policy.CanRead(services.Actor{ID: "u1", Role: services.RoleAdmin}, o))
	assert.True(t, policy.CanRead(services.Actor{ID: "u2", Role: services.RoleOperator}, o))
	assert.True(t, policy.CanRead(services.Actor{ID: "u3", Role: services.RolePartnerAdmin, PartnerID: "p1"}, o))
	assert.False(t, policy.CanRead(services.Actor{ID: "u4", Role: services.RolePartnerAdmin, PartnerID: "p2"}, o))
	assert.True(t, policy.CanRead(services.Actor{ID: "t1", Role: services.RoleTechnician}, o))
	assert.False(t, policy.CanRead(services.Actor{ID: "t9", Role: services.RoleTechnician}, o))
}
