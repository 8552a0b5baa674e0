package profile

import "github.com/novonex/skill-align/internal/types"

// StartDSATopic moves a topic into the in-progress set, removing it from
// the other two. The returned partition stays pairwise disjoint.
func StartDSATopic(progress types.DSAProgress, topicID string) types.DSAProgress {
	return types.DSAProgress{
		Completed:  removeID(progress.Completed, topicID),
		InProgress: appendUnique(removeID(progress.InProgress, topicID), topicID),
		NotStarted: removeID(progress.NotStarted, topicID),
	}
}

// CompleteDSATopic moves a topic into the completed set, removing it from
// the other two.
func CompleteDSATopic(progress types.DSAProgress, topicID string) types.DSAProgress {
	return types.DSAProgress{
		Completed:  appendUnique(removeID(progress.Completed, topicID), topicID),
		InProgress: removeID(progress.InProgress, topicID),
		NotStarted: removeID(progress.NotStarted, topicID),
	}
}

// NormalizeDSAProgress enforces the partition invariant on an externally
// supplied snapshot: a topic id listed in more than one set is kept in the
// most advanced one (completed > inProgress > notStarted), and duplicates
// within a set are dropped.
func NormalizeDSAProgress(progress types.DSAProgress) types.DSAProgress {
	out := types.DSAProgress{
		Completed:  []string{},
		InProgress: []string{},
		NotStarted: []string{},
	}
	seen := make(map[string]bool)
	for _, id := range progress.Completed {
		if !seen[id] {
			seen[id] = true
			out.Completed = append(out.Completed, id)
		}
	}
	for _, id := range progress.InProgress {
		if !seen[id] {
			seen[id] = true
			out.InProgress = append(out.InProgress, id)
		}
	}
	for _, id := range progress.NotStarted {
		if !seen[id] {
			seen[id] = true
			out.NotStarted = append(out.NotStarted, id)
		}
	}
	return out
}

func removeID(ids []string, target string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func appendUnique(ids []string, target string) []string {
	for _, id := range ids {
		if id == target {
			return ids
		}
	}
	return append(ids, target)
}
