package service

import (
	"fmt"
	"math"

	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/entity"
	"github.com/Jhoni-dev/Sistema-Administrativo-Taller-Mecanico/internal/domain/enum"
)

// ConditionCounts breaks down how many checklist items fell into each
// condition label.
type ConditionCounts struct {
	Excellent         int `json:"excellent"`
	Good              int `json:"good"`
	Regular           int `json:"regular"`
	Bad               int `json:"bad"`
	RequiresAttention int `json:"requires_attention"`
	Unset             int `json:"unset"`
}

// ConditionSummary is the scored verdict over a vehicle checklist.
type ConditionSummary struct {
	Status         string          `json:"status"`
	Color          string          `json:"color"`
	Percentage     int             `json:"percentage"`
	Counts         ConditionCounts `json:"counts"`
	Recommendation string          `json:"recommendation"`
}

// conditionBand maps a minimum score to a status label, display color
// and recommendation text. Kept as a table rather than inline branches
// so the classifier stays easy to test and localize.
type conditionBand struct {
	minScore       float64
	status         string
	color          string
	recommendation string
}

var conditionBands = []conditionBand{
	{90, "Excellent", "green", "The vehicle is in excellent condition. Continue with preventive maintenance."},
	{75, "Very Good", "lime", "The vehicle is in very good condition. Monitor the noted points."},
	{60, "Good", "blue", "The vehicle is in good condition. Consider attending to some minor points."},
	{40, "Regular", "amber", "The vehicle requires attention. Prioritize the necessary repairs."},
	{20, "Bad", "orange", "The vehicle needs major repairs. Address the problems urgently."},
	{0, "Critical", "red", "The vehicle is in critical condition. Immediate intervention is required."},
}

const (
	statusNotEvaluated         = "Not evaluated"
	colorNotEvaluated          = "gray"
	recommendationNotEvaluated = "There are no evaluated items."
)

// EvaluateVehicleCondition scores a checklist as the weighted average of
// its evaluated items. Unset items are excluded from both sides of the
// average; a checklist with nothing evaluated yields zero and the
// "Not evaluated" status. Pure function, no I/O.
func EvaluateVehicleCondition(items []entity.ChecklistItem) ConditionSummary {
	var counts ConditionCounts
	weighted := 0

	for i := range items {
		switch items[i].Condition {
		case enum.ConditionExcellent:
			counts.Excellent++
		case enum.ConditionGood:
			counts.Good++
		case enum.ConditionRegular:
			counts.Regular++
		case enum.ConditionBad:
			counts.Bad++
		case enum.ConditionRequiresAttention:
			counts.RequiresAttention++
		default:
			counts.Unset++
			continue
		}
		weighted += items[i].Condition.Weight()
	}

	totalEvaluated := len(items) - counts.Unset
	if totalEvaluated == 0 {
		return ConditionSummary{
			Status:         statusNotEvaluated,
			Color:          colorNotEvaluated,
			Percentage:     0,
			Counts:         counts,
			Recommendation: recommendationNotEvaluated,
		}
	}

	score := float64(weighted) / float64(totalEvaluated)

	band := conditionBands[len(conditionBands)-1]
	for _, b := range conditionBands {
		if score >= b.minScore {
			band = b
			break
		}
	}

	recommendation := band.recommendation
	if counts.RequiresAttention > 0 {
		recommendation += " " + urgencySentence(counts.RequiresAttention)
	}

	return ConditionSummary{
		Status:         band.status,
		Color:          band.color,
		Percentage:     int(math.Round(score)),
		Counts:         counts,
		Recommendation: recommendation,
	}
}

func urgencySentence(count int) string {
	if count == 1 {
		return "There is 1 item that requires urgent attention."
	}
	return fmt.Sprintf("There are %d items that require urgent attention.", count)
}
