package cli

// Exit codes for the create-tap-react CLI.
// Cancellation and interrupts are not failures and exit with ExitSuccess.
const (
	// ExitSuccess indicates the project was created or the user stopped the session.
	ExitSuccess = 0

	// ExitFailure indicates the template could not be fetched or an unexpected error occurred.
	ExitFailure = 1
)
