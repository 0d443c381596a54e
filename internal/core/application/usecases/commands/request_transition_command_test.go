package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestTransitionCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewRequestTransitionCommand(
		orderID, workflow.ScreenPacking, order.Ready,
		"double-wrapped", "operator-7", commands.RoutingContract,
	)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, workflow.ScreenPacking, cmd.Screen())
	assert.Equal(t, order.Ready, cmd.ToStatus())
	assert.Equal(t, "double-wrapped", cmd.Notes())
	assert.Equal(t, "operator-7", cmd.ActorID())
	assert.Equal(t, commands.RoutingContract, cmd.Routing())
}

func TestNewRequestTransitionCommand_EmptyRoutingDefaultsToLegacy(t *testing.T) {
	cmd, err := commands.NewRequestTransitionCommand(
		kernel.NewUUID(), workflow.ScreenIntake, order.Preparation,
		"", "operator-1", "",
	)
	require.NoError(t, err)
	assert.Equal(t, commands.RoutingLegacy, cmd.Routing())
}

func TestNewRequestTransitionCommand_UnknownRouting(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(
		kernel.NewUUID(), workflow.ScreenIntake, order.Preparation,
		"", "operator-1", commands.RoutingHint("shadow"),
	)
	require.Error(t, err)
}

func TestNewRequestTransitionCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(
		kernel.UUID{}, workflow.ScreenIntake, order.Preparation,
		"", "operator-1", commands.RoutingLegacy,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewRequestTransitionCommand_EmptyScreen(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(
		kernel.NewUUID(), "", order.Preparation,
		"", "operator-1", commands.RoutingLegacy,
	)
	require.Error(t, err)
}

func TestNewRequestTransitionCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(
		kernel.NewUUID(), workflow.ScreenIntake, order.Status(99),
		"", "operator-1", commands.RoutingLegacy,
	)
	require.Error(t, err)
}

func TestNewRequestTransitionCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewRequestTransitionCommand(
		kernel.NewUUID(), workflow.ScreenIntake, order.Preparation,
		"", "", commands.RoutingLegacy,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIDIsRequired)
}

func TestRequestTransitionCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.RequestTransitionCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRequestTransitionCommandIsNotConstructed)
}
