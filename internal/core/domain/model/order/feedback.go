package order

import (
	"fieldops/internal/pkg/errs"
	"fieldops/internal/pkg/guard"
)

const (
	feedbackRatingMin = 1
	feedbackRatingMax = 5
)

// ErrFeedbackIsNotConstructed is returned when a Feedback instance was not
// created through the NewFeedback constructor.
var ErrFeedbackIsNotConstructed = errs.NewValueIsRequiredError(
	"Feedback must be created via NewFeedback constructor",
)

// Feedback is the customer's rating of a completed order. It is a value
// object: a rating from 1 to 5 plus a free-form comment. Feedback is only
// meaningful on orders in the Completed status.
type Feedback struct {
	rating  int
	comment string

	guard guard.ConstructorGuard
}

// NewFeedback creates a Feedback value. The rating must be between 1 and 5;
// the comment may be empty.
func NewFeedback(rating int, comment string) (Feedback, error) {
	if rating < feedbackRatingMin || rating > feedbackRatingMax {
		return Feedback{}, errs.NewValueIsOutOfRangeError("rating", rating, feedbackRatingMin, feedbackRatingMax)
	}

	return Feedback{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Rating returns the star rating, 1 to 5.
func (f Feedback) Rating() int {
	return f.rating
}

// Comment returns the free-form comment, possibly empty.
func (f Feedback) Comment() string {
	return f.comment
}

// Validate ensures the Feedback was created through NewFeedback.
func (f Feedback) Validate() error {
	return f.guard.Validate(ErrFeedbackIsNotConstructed)
}
