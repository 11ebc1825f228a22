package wizard

import (
	"context"
	"errors"

	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
)

// KeyCertify is the field key of the review certification checkbox.
const KeyCertify = "certify"

// CertifyMessage is shown when submit is attempted without certifying.
const CertifyMessage = "Please certify that the information provided is accurate."

// ReviewEditor holds the certification checkbox of the review step. It does
// not change the draft. Editors built by Controller.EditorFor write every
// toggle through to the controller, so the box survives leaving the review.
type ReviewEditor struct {
	editor[bool]
	certify func(bool) error
}

func NewReviewEditor(certified bool) *ReviewEditor {
	return &ReviewEditor{editor: editor[bool]{
		step:  StepReview,
		value: certified,
		validate: func(on bool) form.Result[bool] {
			return form.Validate(on, func(on bool) error {
				if !on {
					return form.ValidationError{Field: KeyCertify, Message: CertifyMessage}
				}
				return nil
			})
		},
		assign: func(*form.Draft, bool) {},
	}}
}

func (e *ReviewEditor) Certified() bool { return e.value }

func (e *ReviewEditor) SetCertified(on bool) {
	e.value = on
	e.touch()
	if e.certify == nil {
		return
	}
	if err := e.certify(on); err != nil {
		logger.Warn("Failed to record certification: %v", err)
	}
}

// Submit validates the certification, hands it to c and submits.
func (e *ReviewEditor) Submit(ctx context.Context, c *Controller) (string, error) {
	if err := c.SetCertified(e.value); err != nil {
		return "", err
	}
	if err := e.ValidateAndCommit(ctx, c.Commit); err != nil {
		var verrs form.ValidationErrors
		if errors.As(err, &verrs) {
			return "", ErrCertificationRequired
		}
		return "", err
	}
	return c.Submit(ctx)
}
