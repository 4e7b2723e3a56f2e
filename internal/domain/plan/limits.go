package plan

import "github.com/Perod122/SinkIt/internal/domain/user"

// Limits define os tetos de recursos por plano. Valor -1 significa ilimitado.
type Limits struct {
	MaxFunds          int
	MaxMembersPerFund int
}

func GetLimits(p user.Plan) Limits {
	switch p {
	case user.PlanBasic:
		return Limits{MaxFunds: 10, MaxMembersPerFund: 25}
	case user.PlanPro:
		return Limits{MaxFunds: -1, MaxMembersPerFund: -1}
	default:
		return Limits{MaxFunds: 3, MaxMembersPerFund: 10}
	}
}
