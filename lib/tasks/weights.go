package tasks

import (
	"github.com/pkg/errors"

	dbmodels "office-tools-backend/models/db"
)

// ErrWeightOverflow is returned when explicit weights in a task group sum past 100.
var ErrWeightOverflow = errors.New("Tổng trọng số vượt 100%")

// EffectiveWeights resolves the weight of every task in one group.
// Tasks with an explicit weight keep it. The remaining budget,
// clamped at zero, is split evenly between the auto-weighted tasks;
// the leftover from integer division goes one point apiece to the
// earliest auto tasks, so the group total stays at 100 whenever the
// explicit part allows it.
func EffectiveWeights(group []dbmodels.Task) map[string]int {
	weights := make(map[string]int, len(group))

	explicitSum := 0
	var autoIDs []string
	for _, t := range group {
		if t.Weight != nil {
			weights[t.ID] = *t.Weight
			explicitSum += *t.Weight
			continue
		}
		autoIDs = append(autoIDs, t.ID)
	}

	if len(autoIDs) == 0 {
		return weights
	}

	remaining := 100 - explicitSum
	if remaining < 0 {
		remaining = 0
	}

	share := remaining / len(autoIDs)
	leftover := remaining % len(autoIDs)
	for idx, id := range autoIDs {
		w := share
		if idx < leftover {
			w++
		}
		weights[id] = w
	}
	return weights
}

// ValidateWeight checks that setting newWeight on task selfID keeps the
// group's explicit sum within 100. selfID is empty for a task being created.
func ValidateWeight(group []dbmodels.Task, selfID string, newWeight int) error {
	sum := newWeight
	for _, t := range group {
		if t.ID == selfID || t.Weight == nil {
			continue
		}
		sum += *t.Weight
	}
	if sum > 100 {
		return ErrWeightOverflow
	}
	return nil
}
