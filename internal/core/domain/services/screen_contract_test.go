package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenContractResolver_Resolve(t *testing.T) {
	resolver := services.NewScreenContractResolver(services.NewStatusGraph())

	t.Run("should not resolve when tenant has no contract for screen", func(t *testing.T) {
		settings := workflow.DefaultSettings()

		_, ok := resolver.Resolve(settings, workflow.ScreenIntake)

		assert.False(t, ok)
	})

	t.Run("should not resolve screens outside the tenant's enrollment", func(t *testing.T) {
		settings := workflow.DefaultSettings()
		settings.ContractScreens = []workflow.Screen{workflow.ScreenIntake}

		_, ok := resolver.Resolve(settings, workflow.ScreenPacking)

		assert.False(t, ok)
	})

	t.Run("should resolve a contract holding only the screen's edges", func(t *testing.T) {
		settings := workflow.DefaultSettings()
		settings.ContractScreens = []workflow.Screen{workflow.ScreenIntake}

		contract, ok := resolver.Resolve(settings, workflow.ScreenIntake)

		require.True(t, ok)
		assert.Equal(t, workflow.ScreenIntake, contract.Screen())
		assert.True(t, contract.Allows(order.Intake, order.Preparation))
		assert.False(t, contract.Allows(order.Preparation, order.Processing))
		assert.False(t, contract.Allows(order.Intake, order.Cancelled))
	})

	t.Run("should grant the manager screen every cancellation edge", func(t *testing.T) {
		settings := workflow.DefaultSettings()
		settings.ContractScreens = []workflow.Screen{workflow.ScreenManager}

		contract, ok := resolver.Resolve(settings, workflow.ScreenManager)

		require.True(t, ok)
		assert.True(t, contract.Allows(order.Intake, order.Cancelled))
		assert.True(t, contract.Allows(order.Packing, order.Cancelled))
		assert.False(t, contract.Allows(order.Intake, order.Preparation))
	})

	t.Run("should resolve against the tenant's toggled graph", func(t *testing.T) {
		settings := workflow.Settings{
			Toggles:         workflow.StageToggles{AssemblyEnabled: false, QAEnabled: true, PackingEnabled: true},
			ContractScreens: []workflow.Screen{workflow.ScreenProcessing},
		}

		contract, ok := resolver.Resolve(settings, workflow.ScreenProcessing)

		require.True(t, ok)
		assert.True(t, contract.Allows(order.Processing, order.QA))
		assert.False(t, contract.Allows(order.Processing, order.Assembly))
	})
}

func TestScreenContract_AllowedTargets(t *testing.T) {
	resolver := services.NewScreenContractResolver(services.NewStatusGraph())
	settings := workflow.DefaultSettings()
	settings.ContractScreens = []workflow.Screen{workflow.ScreenDelivery}

	contract, ok := resolver.Resolve(settings, workflow.ScreenDelivery)
	require.True(t, ok)

	t.Run("should list the screen's targets from a status", func(t *testing.T) {
		assert.Equal(t, []order.Status{order.OutForDelivery}, contract.AllowedTargets(order.Ready))
		assert.Equal(t, []order.Status{order.Delivered}, contract.AllowedTargets(order.OutForDelivery))
	})

	t.Run("should list nothing from a status the screen does not serve", func(t *testing.T) {
		assert.Empty(t, contract.AllowedTargets(order.Intake))
	})
}
