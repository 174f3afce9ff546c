package order_test

import (
	"testing"

	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:       "Unknown",
		order.Receipt:       "Receipt",
		order.Transferred:   "Transferred",
		order.Assigned:      "Assigned",
		order.Appointed:     "Appointed",
		order.Visiting:      "Visiting",
		order.Working:       "Working",
		order.PhotoUploaded: "PhotoUploaded",
		order.Completed:     "Completed",
		order.Unable:        "Unable",
		order.Cancelled:     "Cancelled",
	}

	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every declared status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Receipt, order.Transferred, order.Assigned, order.Appointed,
			order.Visiting, order.Working, order.PhotoUploaded,
			order.Completed, order.Unable, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
	require.NoError(t, order.Receipt.Validate())
	require.NoError(t, order.Cancelled.Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []order.Status{order.Completed, order.Unable, order.Cancelled}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}

	nonTerminal := []order.Status{
		order.Receipt, order.Transferred, order.Assigned, order.Appointed,
		order.Visiting, order.Working, order.PhotoUploaded,
	}
	for _, s := range nonTerminal {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatus_TransitionTable(t *testing.T) {
	type transition struct {
		name  string
		apply func(order.Status) (order.Status, error)
		from  []order.Status
		to    order.Status
	}

	all := []order.Status{
		order.Receipt, order.Transferred, order.Assigned, order.Appointed,
		order.Visiting, order.Working, order.PhotoUploaded,
		order.Completed, order.Unable, order.Cancelled,
	}

	transitions := []transition{
		{
			name:  "AssignPartner",
			apply: order.Status.AssignPartner,
			from:  []order.Status{order.Receipt},
			to:    order.Transferred,
		},
		{
			name:  "AssignTechnician",
			apply: order.Status.AssignTechnician,
			from:  []order.Status{order.Transferred},
			to:    order.Assigned,
		},
		{
			name:  "ConfirmAppointment",
			apply: order.Status.ConfirmAppointment,
			from:  []order.Status{order.Assigned},
			to:    order.Appointed,
		},
		{
			name:  "StartWork",
			apply: order.Status.StartWork,
			from:  []order.Status{order.Assigned, order.Appointed},
			to:    order.Working,
		},
		{
			name:  "Complete",
			apply: order.Status.Complete,
			from:  []order.Status{order.Working},
			to:    order.Completed,
		},
		{
			name:  "MarkUnable",
			apply: order.Status.MarkUnable,
			from:  []order.Status{order.Working},
			to:    order.Unable,
		},
		{
			name:  "Cancel",
			apply: order.Status.Cancel,
			from:  []order.Status{order.Receipt, order.Transferred, order.Assigned, order.Appointed},
			to:    order.Cancelled,
		},
	}

	allowed := func(tr transition, s order.Status) bool {
		for _, f := range tr.from {
			if s == f {
				return true
			}
		}
		return false
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			for _, s := range all {
				got, err := tr.apply(s)

				switch {
				case allowed(tr, s):
					require.NoError(t, err, "from %s", s)
					assert.Equal(t, tr.to, got)
				case s.IsTerminal():
					require.ErrorIs(t, err, errs.ErrTerminalState, "from %s", s)
				default:
					require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", s)
				}
			}
		})
	}
}

func TestStatus_TerminalStatesAreAbsorbing(t *testing.T) {
	ops := []func(order.Status) (order.Status, error){
		order.Status.AssignPartner,
		order.Status.AssignTechnician,
		order.Status.ConfirmAppointment,
		order.Status.StartWork,
		order.Status.Complete,
		order.Status.MarkUnable,
		order.Status.Cancel,
	}

	for _, terminal := range []order.Status{order.Completed, order.Unable, order.Cancelled} {
		for _, op := range ops {
			_, err := op(terminal)
			require.ErrorIs(t, err, errs.ErrTerminalState, "from %s", terminal)
		}
	}
}

func TestStatus_ReservedStatesHaveNoTransitions(t *testing.T) {
	// Visiting and PhotoUploaded are declared but never transitioned into,
	// and nothing can be done from them either.
	for _, reserved := range []order.Status{order.Visiting, order.PhotoUploaded} {
		for _, op := range []func(order.Status) (order.Status, error){
			order.Status.AssignPartner,
			order.Status.AssignTechnician,
			order.Status.ConfirmAppointment,
			order.Status.StartWork,
			order.Status.Complete,
			order.Status.MarkUnable,
			order.Status.Cancel,
		} {
			_, err := op(reserved)
			require.ErrorIs(t, err, errs.ErrInvalidTransition, "from %s", reserved)
		}
	}
}

func TestStatus_ValidatePreChecks(t *testing.T) {
	t.Run("ValidateAssignPartner mirrors AssignPartner", func(t *testing.T) {
		require.NoError(t, order.Receipt.ValidateAssignPartner())
		require.ErrorIs(t, order.Transferred.ValidateAssignPartner(), errs.ErrInvalidTransition)
		require.ErrorIs(t, order.Completed.ValidateAssignPartner(), errs.ErrTerminalState)
	})

	t.Run("ValidateAssignTechnician mirrors AssignTechnician", func(t *testing.T) {
		require.NoError(t, order.Transferred.ValidateAssignTechnician())
		require.ErrorIs(t, order.Receipt.ValidateAssignTechnician(), errs.ErrInvalidTransition)
		require.ErrorIs(t, order.Cancelled.ValidateAssignTechnician(), errs.ErrTerminalState)
	})
}
