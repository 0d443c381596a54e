package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetRackLocationCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewSetRackLocationCommand(orderID, "A-12")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "A-12", cmd.RackLocation())
}

func TestNewSetRackLocationCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSetRackLocationCommand(kernel.UUID{}, "A-12")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSetRackLocationCommand_EmptyLocation(t *testing.T) {
	_, err := commands.NewSetRackLocationCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRackLocationIsRequired)
}

func TestSetRackLocationCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.SetRackLocationCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSetRackLocationCommandIsNotConstructed)
}
