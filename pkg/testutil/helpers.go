// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/housing-budget/internal/config"
	"github.com/iwvelando/housing-budget/internal/planner"
	"github.com/iwvelando/housing-budget/internal/reference"
	"go.uber.org/zap"
)

// FindPlan finds the plan for a household by name in the results slice.
// Returns a pointer to the plan if found, nil otherwise.
func FindPlan(results []planner.Result, household string) *planner.Result {
	for i := range results {
		if results[i].Profile.Name == household {
			return &results[i]
		}
	}
	return nil
}

// PlanActive plans every active household of conf against catalog, stopping
// at the first household that cannot be converted or planned.
func PlanActive(logger *zap.Logger, conf *config.Configuration, catalog reference.Catalog) ([]planner.Result, error) {
	var results []planner.Result
	for _, household := range conf.ActiveHouseholds() {
		profile, err := household.Profile()
		if err != nil {
			return nil, err
		}
		result, err := planner.Plan(logger, catalog, profile)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
