package model

import (
	"fmt"
	"time"
)

// Violation is one finding against one host.
type Violation struct {
	CN      string `json:"cn"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.CN, v.Message)
}

// Report collects the violations of a single audit run, in the order
// they were found. It is built once per run and never persisted.
type Report struct {
	ID          string      `json:"id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Violations  []Violation `json:"violations"`
}

// Add appends a violation and returns it.
func (r *Report) Add(cn, format string, args ...interface{}) Violation {
	v := Violation{CN: cn, Message: fmt.Sprintf(format, args...)}
	r.Violations = append(r.Violations, v)
	return v
}

// Clean reports whether the run found no violations.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}
