package contribution

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	GetByMemberAndFund(ctx context.Context, memberID, fundID ulid.ULID) ([]*Contribution, error)
	GetByFundId(ctx context.Context, fundID ulid.ULID) ([]*Contribution, error)
	SumByFund(ctx context.Context, fundID ulid.ULID) (float64, error)
	SumByMemberAndFund(ctx context.Context, memberID, fundID ulid.ULID) (float64, error)
}
