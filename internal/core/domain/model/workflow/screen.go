package workflow

import "laundry/internal/pkg/errs"

// Screen identifies a physical workstation in the laundry that can request
// order status changes. Screens are the unit of permissioning in the status
// graph: every transition edge names the screens allowed to request it.
type Screen string

// Known workstation screens. ScreenManager is the supervisory screen with
// cancellation authority; background jobs cancel through it as well.
const (
	ScreenIntake      Screen = "intake"
	ScreenPreparation Screen = "preparation"
	ScreenProcessing  Screen = "processing"
	ScreenAssembly    Screen = "assembly"
	ScreenQA          Screen = "qa"
	ScreenPacking     Screen = "packing"
	ScreenDelivery    Screen = "delivery"
	ScreenManager     Screen = "manager"
)

// Validate checks that the screen is not empty.
// Screens are tenant-extensible, so unknown names are not rejected here;
// an unknown screen simply matches no edges in the status graph.
func (s Screen) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("screen")
	}
	return nil
}

// String returns the screen name.
func (s Screen) String() string {
	return string(s)
}
