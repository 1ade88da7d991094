package game

import (
	"errors"
	"fmt"
)

var (
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrPlotOccupied         = errors.New("this plot already has a crop")
	ErrNotHarvestReady      = errors.New("this crop is not ready for harvest")
	ErrScheduleNotInFuture  = errors.New("schedule day must be after the current day")
	ErrInvalidGridSize      = errors.New("invalid grid size")
	ErrInvalidTuning        = errors.New("invalid tuning")

	ErrUnknownCrop       = errors.New("unknown crop type")
	ErrUnknownSoil       = errors.New("unknown soil type")
	ErrUnknownIrrigation = errors.New("unknown irrigation type")
	ErrUnknownTreatment  = errors.New("unknown treatment type")
)

// CoordinateError reports a plot coordinate outside the grid.
type CoordinateError struct {
	X, Y     int
	GridSize int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("plot (%d,%d) is outside the %dx%d grid", e.X, e.Y, e.GridSize, e.GridSize)
}

func (e *CoordinateError) Is(target error) bool {
	return target == ErrCoordinateOutOfRange
}
