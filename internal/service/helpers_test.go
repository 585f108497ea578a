package service

import (
	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/realtime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testHub() *realtime.Hub { return realtime.NewHub(nil) }

func testActor(role string, branches ...uuid.UUID) Actor {
	assignments := make(map[string]string, len(branches))
	for _, id := range branches {
		assignments[id.String()] = role
	}
	return Actor{ID: uuid.New(), Name: "Test User", Role: role, BranchAssignments: assignments}
}

func adminActor() Actor { return testActor(model.RoleAdmin) }

// cashierActor is assigned only to the branches it is given; operations on
// any other branch are forbidden.
func cashierActor(branches ...uuid.UUID) Actor { return testActor(model.RoleCashier, branches...) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
