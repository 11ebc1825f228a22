package wizard

import (
	"errors"
	"fmt"

	"github.com/mark3labs/dnvquote/internal/form"
)

var (
	// ErrCertificationRequired is returned by Submit before the applicant
	// has certified the information.
	ErrCertificationRequired = errors.New("certification required")
	// ErrNotOnReview is returned by review-only operations on other steps.
	ErrNotOnReview = errors.New("only available on the review step")
	// ErrSubmitted is returned by editing operations after submission.
	ErrSubmitted = errors.New("quote request already submitted")
	// ErrStepOutOfRange is returned by GoToStep for steps outside 1-6.
	ErrStepOutOfRange = errors.New("step out of range")
	// ErrWrongStep is returned when an editor for another step is continued.
	ErrWrongStep = errors.New("editor does not belong to the current step")
)

// ErrIncomplete is matched by IncompleteError.
var ErrIncomplete = errors.New("quote request incomplete")

// IncompleteError is returned by Submit when a step no longer validates,
// for example after a saved draft was edited by hand.
type IncompleteError struct {
	Step Step
	Errs form.ValidationErrors
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: step %d (%s): %s", ErrIncomplete, int(e.Step), e.Step.Label(), e.Errs.Error())
}

func (e *IncompleteError) Is(target error) bool { return target == ErrIncomplete }

func (e *IncompleteError) Unwrap() error { return e.Errs }
