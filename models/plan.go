package models

import (
	"errors"
	"fmt"
)

// PlanID identifies an entry of the pricing catalog
type PlanID string

// Plan identifiers
const (
	PlanStarter PlanID = "starter"
	PlanPro     PlanID = "pro"
	PlanTeam    PlanID = "team"
)

// DefaultPlan is selected when a visitor first loads the page
const DefaultPlan = PlanStarter

// ErrUnknownPlan is returned for ids that are not part of the catalog
var ErrUnknownPlan = errors.New("unknown plan")

// Plan is one entry of the fixed pricing catalog
type Plan struct {
	ID          PlanID `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

var catalog = [...]Plan{
	{ID: PlanStarter, Name: "Starter", Price: "$0", Description: "For trying it out"},
	{ID: PlanPro, Name: "Pro", Price: "$12", Description: "For shipping faster"},
	{ID: PlanTeam, Name: "Team", Price: "$29", Description: "For teams"},
}

// Catalog returns the pricing plans in display order.
// The returned slice is a copy; the catalog itself never changes.
func Catalog() []Plan {
	plans := make([]Plan, len(catalog))
	copy(plans, catalog[:])
	return plans
}

// ParsePlanID validates a raw plan id against the catalog
func ParsePlanID(raw string) (PlanID, error) {
	for _, p := range catalog {
		if string(p.ID) == raw {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlan, raw)
}

// FindPlan returns the catalog entry for id
func FindPlan(id PlanID) (Plan, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
