package filter

import "fmt"

// CompilationError indicates an expression that could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
}

// Error implements the error interface.
func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile filter %q: %s", e.Expression, e.Reason)
}

// EvaluationError indicates an expression that failed while running
// against a stream.
type EvaluationError struct {
	Expression string
	Stream     string
	Reason     string
}

// Error implements the error interface.
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate filter %q against stream %q: %s", e.Expression, e.Stream, e.Reason)
}
