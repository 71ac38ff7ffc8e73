package logic

import "strings"

// String renders an Answer the way a top-level driver prints one success:
// "Name1 = value1, Name2 = value2", or "true" when the query had no
// variables to report.
func (a Answer) String() string {
	if len(a.Bindings) == 0 {
		return "true"
	}
	parts := make([]string, len(a.Bindings))
	for i, vb := range a.Bindings {
		parts[i] = vb.Name + " = " + vb.Value.String()
	}
	return strings.Join(parts, ", ")
}
