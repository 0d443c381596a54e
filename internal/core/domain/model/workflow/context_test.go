package workflow_test

import (
	"testing"

	"laundry/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/assert"
)

func TestAllStagesEnabled(t *testing.T) {
	toggles := workflow.AllStagesEnabled()

	assert.True(t, toggles.AssemblyEnabled)
	assert.True(t, toggles.QAEnabled)
	assert.True(t, toggles.PackingEnabled)
}

func TestStageToggles_Flags(t *testing.T) {
	toggles := workflow.StageToggles{AssemblyEnabled: true, QAEnabled: false, PackingEnabled: true}

	assert.Equal(t, map[string]bool{
		"assembly_enabled": true,
		"qa_enabled":       false,
		"packing_enabled":  true,
	}, toggles.Flags())
}

func TestDefaultSettings(t *testing.T) {
	settings := workflow.DefaultSettings()

	assert.Equal(t, workflow.AllStagesEnabled(), settings.Toggles)
	assert.Empty(t, settings.ContractScreens)
}

func TestSettings_HasContract(t *testing.T) {
	t.Run("should report enrolled screens", func(t *testing.T) {
		settings := workflow.Settings{
			ContractScreens: []workflow.Screen{workflow.ScreenIntake, workflow.ScreenPacking},
		}

		assert.True(t, settings.HasContract(workflow.ScreenIntake))
		assert.True(t, settings.HasContract(workflow.ScreenPacking))
		assert.False(t, settings.HasContract(workflow.ScreenQA))
	})

	t.Run("should report nothing without enrollment", func(t *testing.T) {
		settings := workflow.DefaultSettings()

		assert.False(t, settings.HasContract(workflow.ScreenIntake))
		assert.False(t, settings.HasContract(workflow.ScreenManager))
	})
}
