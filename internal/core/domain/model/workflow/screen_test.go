package workflow_test

import (
	"testing"

	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_Validate(t *testing.T) {
	t.Run("should accept known screens", func(t *testing.T) {
		screens := []workflow.Screen{
			workflow.ScreenIntake,
			workflow.ScreenPreparation,
			workflow.ScreenProcessing,
			workflow.ScreenAssembly,
			workflow.ScreenQA,
			workflow.ScreenPacking,
			workflow.ScreenDelivery,
			workflow.ScreenManager,
		}

		for _, screen := range screens {
			assert.NoError(t, screen.Validate(), "screen %s", screen)
		}
	})

	t.Run("should accept tenant-specific screens", func(t *testing.T) {
		assert.NoError(t, workflow.Screen("express_counter").Validate())
	})

	t.Run("should reject empty screen", func(t *testing.T) {
		err := workflow.Screen("").Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestScreen_String(t *testing.T) {
	assert.Equal(t, "packing", workflow.ScreenPacking.String())
}
