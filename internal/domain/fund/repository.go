package fund

import (
	"context"
	"time"

	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Filters struct {
	Status *Status

	// AsOf restringe o filtro de ativos aos fundos com prazo vigente
	// (end_date >= AsOf), inclusive na contagem paginada.
	AsOf time.Time
}

type Repository interface {
	Create(ctx context.Context, f *SinkingFund) error
	GetByIdAndOwner(ctx context.Context, id, ownerID ulid.ULID) (*SinkingFund, error)
	GetByOwnerId(ctx context.Context, ownerID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*SinkingFund, int64, error)
	UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	Delete(ctx context.Context, id ulid.ULID) error
	BelongsToOwner(ctx context.Context, fundID, ownerID ulid.ULID) (bool, error)
}
