package member_test

import (
	"context"
	"testing"
	"time"

	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	"github.com/Perod122/SinkIt/internal/domain/member"
	"github.com/Perod122/SinkIt/internal/domain/shared"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeFundRepository struct {
	belongsToOwnerFn func(ctx context.Context, fundID, ownerID ulid.ULID) (bool, error)
}

func (f *fakeFundRepository) Create(ctx context.Context, _ *fund.SinkingFund) error { return nil }
func (f *fakeFundRepository) GetByIdAndOwner(ctx context.Context, _, _ ulid.ULID) (*fund.SinkingFund, error) {
	return nil, appErrors.ErrFundNotFound
}
func (f *fakeFundRepository) GetByOwnerId(ctx context.Context, _ ulid.ULID, _ *fund.Filters, _ *pkg.PaginationParams) ([]*fund.SinkingFund, int64, error) {
	return nil, 0, nil
}
func (f *fakeFundRepository) UpdateFields(ctx context.Context, _ ulid.ULID, _ map[string]interface{}) error {
	return nil
}
func (f *fakeFundRepository) Delete(ctx context.Context, _ ulid.ULID) error { return nil }
func (f *fakeFundRepository) BelongsToOwner(ctx context.Context, fundID, ownerID ulid.ULID) (bool, error) {
	if f.belongsToOwnerFn != nil {
		return f.belongsToOwnerFn(ctx, fundID, ownerID)
	}
	return true, nil
}

type fakeMemberRepository struct {
	createFn  func(ctx context.Context, m *member.Member) error
	getByIdFn func(ctx context.Context, id ulid.ULID) (*member.Member, error)
	deleteFn  func(ctx context.Context, id ulid.ULID) error
}

func (f *fakeMemberRepository) Create(ctx context.Context, m *member.Member) error {
	if f.createFn != nil {
		return f.createFn(ctx, m)
	}
	return nil
}

func (f *fakeMemberRepository) GetById(ctx context.Context, id ulid.ULID) (*member.Member, error) {
	if f.getByIdFn != nil {
		return f.getByIdFn(ctx, id)
	}
	return nil, appErrors.ErrMemberNotFound
}

func (f *fakeMemberRepository) GetByFundId(ctx context.Context, fundID ulid.ULID, _ *pkg.PaginationParams) ([]*member.Member, int64, error) {
	return nil, 0, nil
}

func (f *fakeMemberRepository) GetAllByFundId(ctx context.Context, fundID ulid.ULID) ([]*member.Member, error) {
	return nil, nil
}

func (f *fakeMemberRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeUserGetter struct{}

func (fakeUserGetter) Exists(ctx context.Context, _ ulid.ULID) error { return nil }

func newMemberService(memberRepo *fakeMemberRepository, fundRepo *fakeFundRepository) *member.Service {
	fundSvc := fund.NewService(fundRepo, shared.NewUserCheckerService(fakeUserGetter{}))
	return member.NewService(memberRepo, fundSvc)
}

func TestServiceAddMember(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	fundID := ulid.Make()
	ctx := context.Background()

	base := func() *domaincontracts.MemberAddRequest {
		return &domaincontracts.MemberAddRequest{
			FundId:    fundID,
			OwnerId:   ownerID,
			FirstName: "Maria",
			LastName:  "Silva",
			Count:     2,
		}
	}

	t.Run("first name required", func(t *testing.T) {
		svc := newMemberService(&fakeMemberRepository{}, &fakeFundRepository{})

		request := base()
		request.FirstName = "   "

		_, err := svc.AddMember(ctx, request)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("negative count rejected", func(t *testing.T) {
		svc := newMemberService(&fakeMemberRepository{}, &fakeFundRepository{})

		request := base()
		request.Count = -1

		_, err := svc.AddMember(ctx, request)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", err)
		}
	})

	t.Run("foreign fund reads as not found", func(t *testing.T) {
		fundRepo := &fakeFundRepository{
			belongsToOwnerFn: func(ctx context.Context, fid, oid ulid.ULID) (bool, error) {
				return false, nil
			},
		}
		svc := newMemberService(&fakeMemberRepository{}, fundRepo)

		_, err := svc.AddMember(ctx, base())
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrFundNotFound.Code {
			t.Fatalf("expected FUND_NOT_FOUND, got %v", err)
		}
	})

	t.Run("success trims names", func(t *testing.T) {
		var created *member.Member
		memberRepo := &fakeMemberRepository{
			createFn: func(ctx context.Context, m *member.Member) error {
				created = m
				return nil
			},
		}
		svc := newMemberService(memberRepo, &fakeFundRepository{})

		request := base()
		request.FirstName = "  Maria "
		request.LastName = " Silva "

		entity, err := svc.AddMember(ctx, request)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil || created != entity {
			t.Fatalf("expected member persisted")
		}
		if entity.FirstName != "Maria" || entity.LastName != "Silva" {
			t.Fatalf("expected trimmed names, got %q %q", entity.FirstName, entity.LastName)
		}
		if entity.FundId != fundID {
			t.Fatalf("expected member attached to fund")
		}
	})
}

func TestMemberObligation(t *testing.T) {
	t.Parallel()

	m := &member.Member{Count: 2}
	if got := m.Obligation(1000); got != 2000 {
		t.Fatalf("expected obligation 2000, got %f", got)
	}

	// Mudar o valor do fundo muda a obrigação derivada.
	if got := m.Obligation(1500); got != 3000 {
		t.Fatalf("expected obligation 3000, got %f", got)
	}

	none := &member.Member{Count: 0}
	if got := none.Obligation(1000); got != 0 {
		t.Fatalf("expected zero obligation, got %f", got)
	}
}

func TestServiceGetAndDeleteMember(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	fundID := ulid.Make()
	memberID := ulid.Make()
	ctx := context.Background()

	existing := &member.Member{
		Id:        memberID,
		FundId:    fundID,
		FirstName: "Maria",
		Count:     1,
		CreatedAt: time.Now(),
	}

	t.Run("member of foreign fund reads as not found", func(t *testing.T) {
		memberRepo := &fakeMemberRepository{
			getByIdFn: func(ctx context.Context, id ulid.ULID) (*member.Member, error) {
				return existing, nil
			},
		}
		fundRepo := &fakeFundRepository{
			belongsToOwnerFn: func(ctx context.Context, fid, oid ulid.ULID) (bool, error) {
				return false, nil
			},
		}
		svc := newMemberService(memberRepo, fundRepo)

		_, err := svc.GetMember(ctx, memberID, ownerID)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrFundNotFound.Code {
			t.Fatalf("expected FUND_NOT_FOUND, got %v", err)
		}
	})

	t.Run("delete checks ownership first", func(t *testing.T) {
		deleted := false
		memberRepo := &fakeMemberRepository{
			getByIdFn: func(ctx context.Context, id ulid.ULID) (*member.Member, error) {
				return existing, nil
			},
			deleteFn: func(ctx context.Context, id ulid.ULID) error {
				deleted = true
				return nil
			},
		}
		svc := newMemberService(memberRepo, &fakeFundRepository{})

		if err := svc.DeleteMember(ctx, memberID, ownerID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Fatalf("expected delete call")
		}
	})

	t.Run("missing member", func(t *testing.T) {
		svc := newMemberService(&fakeMemberRepository{}, &fakeFundRepository{})

		_, err := svc.GetMember(ctx, memberID, ownerID)
		appErr, ok := appErrors.AsAppError(err)
		if !ok || appErr.Code != appErrors.ErrMemberNotFound.Code {
			t.Fatalf("expected MEMBER_NOT_FOUND, got %v", err)
		}
	})
}
