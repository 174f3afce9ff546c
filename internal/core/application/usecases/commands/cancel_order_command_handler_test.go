package commands_test

import (
	"testing"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	for _, status := range []order.Status{
		order.Receipt, order.Transferred, order.Assigned, order.Appointed,
	} {
		t.Run(status.String(), func(t *testing.T) {
			target := orderInStatus(t, status)
			cmd, err := commands.NewCancelOrderCommand(adminActor, target.ID())
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
			repo.On("Update", mock.Anything, target).Return(nil).Once()
			_, factory := committedUoW(repo)

			h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
			updated, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, updated.Status())
		})
	}
}

func TestCancelOrderCommandHandler_Handle_WorkAlreadyStarted(t *testing.T) {
	ctx := t.Context()
	target := orderInStatus(t, order.Working)
	cmd, err := commands.NewCancelOrderCommand(adminActor, target.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
	_, factory := abortedUoW(repo)

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Working, target.Status())
}

func TestCancelOrderCommandHandler_Handle_PartnerAdminForbidden(t *testing.T) {
	ctx := t.Context()
	target := orderInStatus(t, order.Transferred) // partner p1
	cmd, err := commands.NewCancelOrderCommand(partnerActor, target.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
	_, factory := abortedUoW(repo)

	h := commands.NewCancelOrderCommandHandler(factory, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Transferred, target.Status())
}
