package fund_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	"github.com/Perod122/SinkIt/internal/domain/shared"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeFundRepository struct {
	createFn          func(ctx context.Context, f *fund.SinkingFund) error
	getByIdAndOwnerFn func(ctx context.Context, id, ownerID ulid.ULID) (*fund.SinkingFund, error)
	getByOwnerIdFn    func(ctx context.Context, ownerID ulid.ULID, filters *fund.Filters, pagination *pkg.PaginationParams) ([]*fund.SinkingFund, int64, error)
	updateFieldsFn    func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	deleteFn          func(ctx context.Context, id ulid.ULID) error
	belongsToOwnerFn  func(ctx context.Context, fundID, ownerID ulid.ULID) (bool, error)
}

func (f *fakeFundRepository) Create(ctx context.Context, entity *fund.SinkingFund) error {
	if f.createFn != nil {
		return f.createFn(ctx, entity)
	}
	return nil
}

func (f *fakeFundRepository) GetByIdAndOwner(ctx context.Context, id, ownerID ulid.ULID) (*fund.SinkingFund, error) {
	if f.getByIdAndOwnerFn != nil {
		return f.getByIdAndOwnerFn(ctx, id, ownerID)
	}
	return nil, appErrors.ErrFundNotFound
}

func (f *fakeFundRepository) GetByOwnerId(ctx context.Context, ownerID ulid.ULID, filters *fund.Filters, pagination *pkg.PaginationParams) ([]*fund.SinkingFund, int64, error) {
	if f.getByOwnerIdFn != nil {
		return f.getByOwnerIdFn(ctx, ownerID, filters, pagination)
	}
	return nil, 0, nil
}

func (f *fakeFundRepository) UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if f.updateFieldsFn != nil {
		return f.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeFundRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeFundRepository) BelongsToOwner(ctx context.Context, fundID, ownerID ulid.ULID) (bool, error) {
	if f.belongsToOwnerFn != nil {
		return f.belongsToOwnerFn(ctx, fundID, ownerID)
	}
	return true, nil
}

type fakeUserGetter struct {
	existsFn func(ctx context.Context, userID ulid.ULID) error
}

func (f *fakeUserGetter) Exists(ctx context.Context, userID ulid.ULID) error {
	if f.existsFn != nil {
		return f.existsFn(ctx, userID)
	}
	return nil
}

func newFundService(repo *fakeFundRepository, now time.Time) *fund.Service {
	svc := fund.NewService(repo, shared.NewUserCheckerService(&fakeUserGetter{}))
	svc.Now = func() time.Time { return now }
	return svc
}

func TestServiceCreateFundValidations(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	ctx := context.Background()

	base := func() *domaincontracts.FundCreateRequest {
		return &domaincontracts.FundCreateRequest{
			OwnerId:     ownerID,
			StartDate:   date("2024-01-01"),
			EndDate:     date("2024-01-31"),
			PaymentType: "Monthly",
			Amount:      1000,
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *domaincontracts.FundCreateRequest)
		wantErr string
	}{
		{
			name:    "missing start date",
			mutate:  func(r *domaincontracts.FundCreateRequest) { r.StartDate = time.Time{} },
			wantErr: "VALIDATION_ERROR",
		},
		{
			name:    "missing end date",
			mutate:  func(r *domaincontracts.FundCreateRequest) { r.EndDate = time.Time{} },
			wantErr: "VALIDATION_ERROR",
		},
		{
			name: "end before start",
			mutate: func(r *domaincontracts.FundCreateRequest) {
				r.StartDate = date("2024-02-01")
				r.EndDate = date("2024-01-01")
			},
			wantErr: "VALIDATION_ERROR",
		},
		{
			name:    "negative amount",
			mutate:  func(r *domaincontracts.FundCreateRequest) { r.Amount = -10 },
			wantErr: "VALIDATION_ERROR",
		},
		{
			name:    "unknown payment type",
			mutate:  func(r *domaincontracts.FundCreateRequest) { r.PaymentType = "Daily" },
			wantErr: "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := newFundService(&fakeFundRepository{}, date("2024-01-01"))

			request := base()
			tt.mutate(request)

			_, err := svc.CreateFund(ctx, request)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErr {
				t.Fatalf("expected code %s, got %s", tt.wantErr, appErr.Code)
			}
		})
	}

	t.Run("unknown owner", func(t *testing.T) {
		repo := &fakeFundRepository{}
		svc := fund.NewService(repo, shared.NewUserCheckerService(&fakeUserGetter{
			existsFn: func(ctx context.Context, userID ulid.ULID) error {
				return appErrors.ErrUserNotFound
			},
		}))

		_, err := svc.CreateFund(ctx, base())
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrUserNotFound.Code {
			t.Fatalf("expected USER_NOT_FOUND, got %v", err)
		}
	})

	t.Run("success defaults to monthly and active", func(t *testing.T) {
		var created *fund.SinkingFund
		repo := &fakeFundRepository{
			createFn: func(ctx context.Context, entity *fund.SinkingFund) error {
				created = entity
				return nil
			},
		}
		svc := newFundService(repo, date("2024-01-01"))

		request := base()
		request.PaymentType = ""

		entity, err := svc.CreateFund(ctx, request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || created != entity {
			t.Fatalf("expected entity persisted")
		}
		if entity.PaymentType != fund.PaymentMonthly {
			t.Fatalf("expected Monthly default, got %s", entity.PaymentType)
		}
		if entity.Status != fund.StatusActive {
			t.Fatalf("expected active status, got %s", entity.Status)
		}
		if pkg.IsEmptyULID(entity.Id) {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceGetFundAppliesExpiry(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	fundID := ulid.Make()
	ctx := context.Background()

	newExpired := func() *fund.SinkingFund {
		return &fund.SinkingFund{
			Id:        fundID,
			OwnerId:   ownerID,
			StartDate: date("2024-01-01"),
			EndDate:   date("2024-01-31"),
			Status:    fund.StatusActive,
		}
	}

	t.Run("past deadline flips and persists", func(t *testing.T) {
		var persisted map[string]interface{}
		repo := &fakeFundRepository{
			getByIdAndOwnerFn: func(ctx context.Context, id, oid ulid.ULID) (*fund.SinkingFund, error) {
				return newExpired(), nil
			},
			updateFieldsFn: func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
				persisted = fields
				return nil
			},
		}
		svc := newFundService(repo, date("2024-02-10"))

		entity, err := svc.GetFund(ctx, fundID, ownerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Status != fund.StatusCompleted {
			t.Fatalf("expected completed, got %s", entity.Status)
		}
		if persisted == nil || persisted["status"] != fund.StatusCompleted {
			t.Fatalf("expected completion persisted, got %v", persisted)
		}
	})

	t.Run("persistence failure never blocks the read", func(t *testing.T) {
		repo := &fakeFundRepository{
			getByIdAndOwnerFn: func(ctx context.Context, id, oid ulid.ULID) (*fund.SinkingFund, error) {
				return newExpired(), nil
			},
			updateFieldsFn: func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
				return errors.New("connection reset")
			},
		}
		svc := newFundService(repo, date("2024-02-10"))

		entity, err := svc.GetFund(ctx, fundID, ownerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Status != fund.StatusCompleted {
			t.Fatalf("expected completed even without persistence, got %s", entity.Status)
		}
	})

	t.Run("already completed fund is untouched", func(t *testing.T) {
		updateCalls := 0
		repo := &fakeFundRepository{
			getByIdAndOwnerFn: func(ctx context.Context, id, oid ulid.ULID) (*fund.SinkingFund, error) {
				completed := newExpired()
				completed.Status = fund.StatusCompleted
				return completed, nil
			},
			updateFieldsFn: func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
				updateCalls++
				return nil
			},
		}
		svc := newFundService(repo, date("2024-02-10"))

		entity, err := svc.GetFund(ctx, fundID, ownerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Status != fund.StatusCompleted {
			t.Fatalf("expected completed, got %s", entity.Status)
		}
		if updateCalls != 0 {
			t.Fatalf("expected no writes for completed fund, got %d", updateCalls)
		}
	})

	t.Run("before deadline stays active", func(t *testing.T) {
		repo := &fakeFundRepository{
			getByIdAndOwnerFn: func(ctx context.Context, id, oid ulid.ULID) (*fund.SinkingFund, error) {
				return newExpired(), nil
			},
		}
		svc := newFundService(repo, date("2024-01-15"))

		entity, err := svc.GetFund(ctx, fundID, ownerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Status != fund.StatusActive {
			t.Fatalf("expected active, got %s", entity.Status)
		}
	})
}

func TestServiceListFundsActiveFilterExcludesJustExpired(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	ctx := context.Background()

	expired := &fund.SinkingFund{
		Id:        ulid.Make(),
		OwnerId:   ownerID,
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-01-31"),
		Status:    fund.StatusActive,
	}
	running := &fund.SinkingFund{
		Id:        ulid.Make(),
		OwnerId:   ownerID,
		StartDate: date("2024-01-01"),
		EndDate:   date("2024-12-31"),
		Status:    fund.StatusActive,
	}

	var gotFilters *fund.Filters
	repo := &fakeFundRepository{
		getByOwnerIdFn: func(ctx context.Context, oid ulid.ULID, filters *fund.Filters, pagination *pkg.PaginationParams) ([]*fund.SinkingFund, int64, error) {
			gotFilters = filters
			return []*fund.SinkingFund{expired, running}, 2, nil
		},
	}
	svc := newFundService(repo, date("2024-06-01"))

	active := fund.StatusActive
	funds, total, err := svc.ListFunds(ctx, ownerID, &fund.Filters{Status: &active}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A consulta carrega o relógio: vencidos ficam fora da página e da
	// contagem já no banco.
	if gotFilters == nil || !gotFilters.AsOf.Equal(date("2024-06-01")) {
		t.Fatalf("expected query scoped to the clock, got %+v", gotFilters)
	}
	if len(funds) != 1 || funds[0].Id != running.Id {
		t.Fatalf("expected only the running fund, got %d", len(funds))
	}
	if total != 1 {
		t.Fatalf("expected total adjusted to 1, got %d", total)
	}

	// O fundo vencido foi concluído em memória mesmo fora da resposta.
	if expired.Status != fund.StatusCompleted {
		t.Fatalf("expected expired fund flipped, got %s", expired.Status)
	}
}

func TestServiceOwnership(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	fundID := ulid.Make()
	ctx := context.Background()

	t.Run("foreign fund reads as not found", func(t *testing.T) {
		repo := &fakeFundRepository{
			belongsToOwnerFn: func(ctx context.Context, fid, oid ulid.ULID) (bool, error) {
				return false, nil
			},
		}
		svc := newFundService(repo, date("2024-01-01"))

		err := svc.CompleteFund(ctx, fundID, ownerID)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrFundNotFound.Code {
			t.Fatalf("expected FUND_NOT_FOUND, got %v", err)
		}

		err = svc.DeleteFund(ctx, fundID, ownerID)
		appErr, ok = appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrFundNotFound.Code {
			t.Fatalf("expected FUND_NOT_FOUND, got %v", err)
		}
	})

	t.Run("delete own fund", func(t *testing.T) {
		deleted := false
		repo := &fakeFundRepository{
			deleteFn: func(ctx context.Context, id ulid.ULID) error {
				deleted = true
				return nil
			},
		}
		svc := newFundService(repo, date("2024-01-01"))

		if err := svc.DeleteFund(ctx, fundID, ownerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Fatalf("expected delete call")
		}
	})
}
