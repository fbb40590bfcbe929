package orchestration

import (
	"strings"

	"github.com/stackdock/stackdock/internal/config"
)

// classify splits the desired stacks into those to create and those whose
// name already exists on the control plane. Membership is case-insensitive:
// the control plane normalizes stack names, while the desired list is
// caller-supplied and may vary in case. classify never mutates remote
// state.
func classify(desired []config.Stack, existing map[string]bool) (toCreate, skipped []config.Stack) {
	for _, s := range desired {
		if existing[strings.ToLower(s.Name)] {
			skipped = append(skipped, s)
			continue
		}
		toCreate = append(toCreate, s)
	}
	return toCreate, skipped
}

// lowerSet builds a lowercase membership set from the remote stack names.
func lowerSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return set
}
