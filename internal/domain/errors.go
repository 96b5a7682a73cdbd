package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrDraftNotFound       = errors.New("draft not found")
)

// Rejections: expected outcomes of a booking attempt, surfaced to the caller
// as they are.
var (
	ErrMissingField          = errors.New("missing required field")
	ErrOutsideOperatingHours = errors.New("requested time is outside operating hours")
	ErrLunchBreakConflict    = errors.New("requested time overlaps the lunch break")
	ErrCapacityExceeded      = errors.New("time slot is fully booked")
	ErrNoLaneAvailable       = errors.New("no hotel lane available for the requested stay")
	ErrInvalidSlot           = errors.New("time slot does not match the service schedule")
	ErrInvalidStay           = errors.New("check-out must be after check-in")
	ErrAddonNotAllowed       = errors.New("addon is not available for this pet")
)

var (
	ErrReservationNotActive = errors.New("reservation is not active")
	ErrStepOutOfOrder       = errors.New("previous steps must be completed first")
	ErrUnknownStep          = errors.New("unknown workflow step")
	ErrWorkflowSubmitted    = errors.New("workflow already submitted")
)

var (
	ErrDenied = errors.New("access denied")
)

var (
	ErrValidation = errors.New("validation error")
)

type MissingFieldError struct {
	Field string
}

func MissingField(name string) *MissingFieldError {
	return &MissingFieldError{Field: name}
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

var reasonCodes = []struct {
	err  error
	code string
}{
	{ErrMissingField, "missing_field"},
	{ErrOutsideOperatingHours, "outside_operating_hours"},
	{ErrLunchBreakConflict, "lunch_break_conflict"},
	{ErrCapacityExceeded, "capacity_exceeded"},
	{ErrNoLaneAvailable, "no_lane_available"},
	{ErrInvalidSlot, "invalid_slot"},
	{ErrInvalidStay, "invalid_stay"},
	{ErrAddonNotAllowed, "addon_not_allowed"},
	{ErrReservationNotActive, "reservation_not_active"},
	{ErrStepOutOfOrder, "step_out_of_order"},
	{ErrUnknownStep, "unknown_step"},
	{ErrWorkflowSubmitted, "workflow_submitted"},
	{ErrDenied, "denied"},
	{ErrReservationNotFound, "not_found"},
	{ErrDraftNotFound, "not_found"},
	{ErrValidation, "validation_error"},
}

// ReasonCode returns a stable machine-readable code for err, "internal" when
// err is not one of the domain errors.
func ReasonCode(err error) string {
	for _, rc := range reasonCodes {
		if errors.Is(err, rc.err) {
			return rc.code
		}
	}
	return "internal"
}

// IsRejection reports whether err is a booking rejection rather than an
// infrastructure failure.
func IsRejection(err error) bool {
	switch {
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrOutsideOperatingHours),
		errors.Is(err, ErrLunchBreakConflict),
		errors.Is(err, ErrCapacityExceeded),
		errors.Is(err, ErrNoLaneAvailable),
		errors.Is(err, ErrInvalidSlot),
		errors.Is(err, ErrInvalidStay),
		errors.Is(err, ErrAddonNotAllowed),
		errors.Is(err, ErrValidation):
		return true
	}
	return false
}
