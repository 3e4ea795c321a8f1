package input

import "context"

type SignupUseCase interface {
	// Signup registers email for the named activity and returns the
	// user-facing confirmation message.
	Signup(ctx context.Context, locale, activityName, email string) (string, error)
	// Unregister removes email from the named activity and returns the
	// user-facing confirmation message.
	Unregister(ctx context.Context, locale, activityName, email string) (string, error)
}
