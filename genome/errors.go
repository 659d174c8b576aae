package genome

import "errors"

// Sentinel errors returned by genome operations. All failures are local and
// synchronous; nothing is retried internally. The driver decides whether to
// re-roll a mutation or give up.
var (
	// ErrNodeNotFound reports a lookup for a node number the genome does
	// not contain. An expected, recoverable condition.
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateNode reports an attempt to register a second node under
	// an existing number. Unlike the other errors it indicates corrupted
	// invariants, a program defect rather than a normal evolutionary
	// outcome, and should be treated as non-recoverable.
	ErrDuplicateNode = errors.New("duplicate node number")

	// ErrNoAvailableConnection reports a connection mutation attempted
	// when no legal candidate pair exists.
	ErrNoAvailableConnection = errors.New("no available connection")

	// ErrIncompatibleGenomes reports a crossover between genomes whose
	// input/output shape or weight range differ.
	ErrIncompatibleGenomes = errors.New("incompatible genomes")
)
