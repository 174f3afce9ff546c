package guard_test

import (
	"errors"
	"testing"

	"fieldops/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a guarded domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type appointment struct {
		date  string
		guard guard.ConstructorGuard
	}

	var errAppointmentNotConstructed = errors.New("appointment must be created via newAppointment")

	newAppointment := func(date string) (appointment, error) {
		if date == "" {
			return appointment{}, errors.New("date is required")
		}
		return appointment{date: date, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		a, err := newAppointment("2024-01-20 14:00")

		require.NoError(t, err)
		require.NoError(t, a.guard.Validate(errAppointmentNotConstructed))
		assert.Equal(t, "2024-01-20 14:00", a.date)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var a appointment

		err := a.guard.Validate(errAppointmentNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errAppointmentNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newAppointment("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date is required")
	})
}

func TestConstructorGuard_CopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		gCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, gCopy.Validate(testError))
	})
}
