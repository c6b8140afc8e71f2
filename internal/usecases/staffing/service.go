package staffing

import "fmt"

// Role names as shown on the dashboard.
const (
	RoleKitchen = "Kitchen"
	RolePizza   = "Pizza"
	RoleBar     = "Bar"
	RoleService = "Service"
	RoleRunner  = "Runner"
)

// Plan is the per-role headcount with the recommended shift split for one
// service day.
type Plan struct {
	Guests    int              `json:"guests"`
	IsWeekend bool             `json:"is_weekend"`
	Roles     []RoleAssignment `json:"roles"`
}

type RoleAssignment struct {
	Role      string `json:"role"`
	Headcount int    `json:"headcount"`
	ShiftPlan string `json:"shift_plan"`
}

// Total returns the summed headcount across all roles.
func (p *Plan) Total() int {
	total := 0
	for _, role := range p.Roles {
		total += role.Headcount
	}
	return total
}

// PlanForDay derives the staffing plan from expected total guests. The bands
// come from the restaurant's operating experience; weekends (Friday through
// Sunday) add a third bartender at high volume.
func PlanForDay(guests int, isWeekend bool) *Plan {
	plan := &Plan{
		Guests:    guests,
		IsWeekend: isWeekend,
	}

	for _, role := range []struct {
		name  string
		count int
	}{
		{RoleKitchen, kitchenHeadcount(guests)},
		{RolePizza, pizzaHeadcount(guests)},
		{RoleBar, barHeadcount(guests, isWeekend)},
		{RoleService, serviceHeadcount(guests)},
		{RoleRunner, runnerHeadcount(guests)},
	} {
		plan.Roles = append(plan.Roles, RoleAssignment{
			Role:      role.name,
			Headcount: role.count,
			ShiftPlan: ShiftPlan(role.name, role.count),
		})
	}

	return plan
}

func kitchenHeadcount(guests int) int {
	if guests > 250 {
		return 4
	}
	return 3
}

func pizzaHeadcount(guests int) int {
	if guests >= 120 {
		return 2
	}
	return 1
}

func barHeadcount(guests int, isWeekend bool) int {
	if guests < 100 {
		return 1
	}
	if guests > 200 && isWeekend {
		return 3
	}
	return 2
}

func serviceHeadcount(guests int) int {
	switch {
	case guests >= 300:
		return 4
	case guests >= 200:
		return 3
	default:
		return 2
	}
}

func runnerHeadcount(guests int) int {
	switch {
	case guests >= 300:
		return 3
	case guests >= 200:
		return 2
	default:
		return 1
	}
}

// ShiftPlan recommends how to split a role's headcount into shifts so the
// peak hours are covered without paying full days across the board.
func ShiftPlan(role string, count int) string {
	if count <= 1 {
		return "1x Basis"
	}

	switch count {
	case 2:
		switch role {
		case RolePizza:
			return "1x Lang + 1x Peak (18-21)"
		case RoleBar:
			return "1x Lang + 1x Support"
		default:
			return "1x Lang + 1x Peak (4h)"
		}
	case 3:
		return "2x Lang + 1x Peak (18-22)"
	default:
		return fmt.Sprintf("2x Station + %dx Runner", count-2)
	}
}
