// Package checks implements the data-quality diagnostics and the sequential
// runner that executes them over one loaded table.
package checks

// Check statuses. A check that finds problems warns; a check that cannot
// complete errors. Neither stops the run.
const (
	StatusOK      = "OK"
	StatusWarning = "WARN"
	StatusError   = "ERROR"
)

// Result is the outcome of one diagnostic. Internal check failures surface
// here as StatusError instead of crossing the check boundary, so every
// diagnostic stays best-effort and independent.
type Result struct {
	Name    string   `yaml:"name"`
	Status  string   `yaml:"status"`
	Message string   `yaml:"message"`
	Details []string `yaml:"details,omitempty"`
	Count   int      `yaml:"count"`
}

func okResult(name, msg string) Result {
	return Result{Name: name, Status: StatusOK, Message: msg}
}

func warnResult(name, msg string, count int) Result {
	return Result{Name: name, Status: StatusWarning, Message: msg, Count: count}
}

func errResult(name string, err error) Result {
	return Result{Name: name, Status: StatusError, Message: "Error: " + err.Error()}
}
