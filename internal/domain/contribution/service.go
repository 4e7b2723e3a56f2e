package contribution

import (
	"context"
	"time"

	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/domain/member"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository    Repository
	MemberService *member.Service
}

func NewService(repo Repository, memberSvc *member.Service) *Service {
	return &Service{Repository: repo, MemberService: memberSvc}
}

// AddContribution registra um pagamento de um membro em um fundo. O membro
// precisa existir, pertencer ao fundo informado, e o fundo ao chamador.
// date_paid vazio assume o instante do registro.
func (s *Service) AddContribution(ctx context.Context, request *domaincontracts.ContributionAddRequest) (*Contribution, error) {
	if request.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	entity, err := s.MemberService.GetMember(ctx, request.MemberId, request.OwnerId)
	if err != nil {
		return nil, err
	}
	if entity.FundId != request.FundId {
		return nil, appErrors.ErrMemberNotFound
	}

	datePaid := time.Now()
	if request.DatePaid != nil && !request.DatePaid.IsZero() {
		datePaid = *request.DatePaid
	}

	contrib := &Contribution{
		Id:        pkg.GenerateULID(),
		MemberId:  request.MemberId,
		FundId:    request.FundId,
		Amount:    request.Amount,
		DatePaid:  datePaid,
		CreatedAt: pkg.SetTimestamps(),
	}

	if err := s.Repository.Create(ctx, contrib); err != nil {
		return nil, err
	}
	return contrib, nil
}

// ListContributions retorna os pagamentos de um membro em um fundo, do mais
// recente para o mais antigo por data de pagamento.
func (s *Service) ListContributions(ctx context.Context, memberID, fundID, ownerID ulid.ULID) ([]*Contribution, error) {
	entity, err := s.MemberService.GetMember(ctx, memberID, ownerID)
	if err != nil {
		return nil, err
	}
	if entity.FundId != fundID {
		return nil, appErrors.ErrMemberNotFound
	}
	return s.Repository.GetByMemberAndFund(ctx, memberID, fundID)
}

// TotalForFund retorna todos os lançamentos do fundo e a soma dos valores.
func (s *Service) TotalForFund(ctx context.Context, fundID, ownerID ulid.ULID) ([]*Contribution, float64, error) {
	if err := s.MemberService.FundService.CheckFundBelongsToOwner(ctx, fundID, ownerID); err != nil {
		return nil, 0, err
	}

	rows, err := s.Repository.GetByFundId(ctx, fundID)
	if err != nil {
		return nil, 0, err
	}

	var sum float64
	for _, c := range rows {
		sum += c.Amount
	}
	return rows, sum, nil
}

// SumForFund soma os pagamentos do fundo no banco, sem materializar as linhas.
func (s *Service) SumForFund(ctx context.Context, fundID ulid.ULID) (float64, error) {
	return s.Repository.SumByFund(ctx, fundID)
}

// SumForMember soma os pagamentos de um membro em um fundo.
func (s *Service) SumForMember(ctx context.Context, memberID, fundID ulid.ULID) (float64, error) {
	return s.Repository.SumByMemberAndFund(ctx, memberID, fundID)
}
