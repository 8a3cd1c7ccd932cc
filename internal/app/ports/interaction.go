package ports

import "context"

// Confirmer obtains an explicit yes/no answer from the operator.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress renders mutation loop progress.
type Progress interface {
	Step(done, total int, label string)
	Done()
}

// Reporter prints user-facing messages.
type Reporter interface {
	Printf(format string, args ...any)
}
