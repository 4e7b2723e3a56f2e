package member

import (
	"context"

	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetById(ctx context.Context, id ulid.ULID) (*Member, error)
	GetByFundId(ctx context.Context, fundID ulid.ULID, pagination *pkg.PaginationParams) ([]*Member, int64, error)
	GetAllByFundId(ctx context.Context, fundID ulid.ULID) ([]*Member, error)
	Delete(ctx context.Context, id ulid.ULID) error
}
