package storage

import "fmt"

// CalculateResourcePaths generates the resource URIs under which a recorded
// run can be read back.
func CalculateResourcePaths(runID string) []string {
	return []string{
		fmt.Sprintf("run://%s", runID),
		fmt.Sprintf("run://%s/works", runID),
	}
}
