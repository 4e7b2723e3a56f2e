package member

import (
	"context"
	"strings"

	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/domain/fund"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	FundService *fund.Service
}

func NewService(repo Repository, fundSvc *fund.Service) *Service {
	return &Service{Repository: repo, FundService: fundSvc}
}

// AddMember anexa um membro ao fundo do usuário. O fundo precisa existir e
// pertencer ao chamador; contagem de cotas negativa é rejeitada em vez de
// silenciosamente zerada.
func (s *Service) AddMember(ctx context.Context, request *domaincontracts.MemberAddRequest) (*Member, error) {
	firstName := strings.TrimSpace(request.FirstName)
	if firstName == "" {
		return nil, appErrors.NewValidationError("first_name", "é obrigatório")
	}
	if request.Count < 0 {
		return nil, appErrors.NewValidationError("count", "deve ser maior ou igual a zero")
	}

	if err := s.FundService.CheckFundBelongsToOwner(ctx, request.FundId, request.OwnerId); err != nil {
		return nil, err
	}

	entity := &Member{
		Id:        pkg.GenerateULID(),
		FundId:    request.FundId,
		FirstName: firstName,
		LastName:  strings.TrimSpace(request.LastName),
		Count:     request.Count,
		CreatedAt: pkg.SetTimestamps(),
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) ListMembers(ctx context.Context, fundID, ownerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Member, int64, error) {
	if err := s.FundService.CheckFundBelongsToOwner(ctx, fundID, ownerID); err != nil {
		return nil, 0, err
	}
	return s.Repository.GetByFundId(ctx, fundID, pagination)
}

func (s *Service) GetMember(ctx context.Context, id, ownerID ulid.ULID) (*Member, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.FundService.CheckFundBelongsToOwner(ctx, entity.FundId, ownerID); err != nil {
		return nil, err
	}
	return entity, nil
}

// DeleteMember remove o membro. As contribuições já registradas não são
// removidas em cascata.
func (s *Service) DeleteMember(ctx context.Context, id, ownerID ulid.ULID) error {
	if _, err := s.GetMember(ctx, id, ownerID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

// RosterForFund retorna todos os membros do fundo, sem paginação, para a
// montagem do resumo.
func (s *Service) RosterForFund(ctx context.Context, fundID, ownerID ulid.ULID) ([]*Member, error) {
	if err := s.FundService.CheckFundBelongsToOwner(ctx, fundID, ownerID); err != nil {
		return nil, err
	}
	return s.Repository.GetAllByFundId(ctx, fundID)
}
