package graphbuild

import "fmt"

// wrapLoad annotates a table-loading error with the step that produced it.
// The tables package already attaches the offending path; this adds which
// phase of Build() was in progress, for log correlation.
func wrapLoad(step string, err error) error {
	return fmt.Errorf("graphbuild: loading %s: %w", step, err)
}
