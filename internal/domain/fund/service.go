package fund

import (
	"context"
	"time"

	domaincontracts "github.com/Perod122/SinkIt/internal/domain/contracts"
	"github.com/Perod122/SinkIt/internal/domain/shared"
	appErrors "github.com/Perod122/SinkIt/internal/errors"
	"github.com/Perod122/SinkIt/internal/logger"
	"github.com/Perod122/SinkIt/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService

	// Now permite controlar o relógio nos testes; nil usa time.Now.
	Now func() time.Time
}

func NewService(repo Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repo, UserChecker: userChecker}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) CreateFund(ctx context.Context, request *domaincontracts.FundCreateRequest) (*SinkingFund, error) {
	if err := validateCreate(request); err != nil {
		return nil, err
	}

	if err := s.UserChecker.EnsureUserExists(ctx, request.OwnerId); err != nil {
		return nil, err
	}

	paymentType := PaymentType(request.PaymentType)
	if request.PaymentType == "" {
		paymentType = PaymentMonthly
	}

	now := s.now()
	entity := &SinkingFund{
		Id:          pkg.GenerateULID(),
		OwnerId:     request.OwnerId,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		PaymentType: paymentType,
		Amount:      request.Amount,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// ListFunds retorna os fundos do usuário do mais recente para o mais antigo,
// aplicando a regra de conclusão por prazo a cada fundo antes de responder.
// O flip de status em memória vale para a resposta mesmo quando a persistência
// falha; a leitura nunca é bloqueada por erro de escrita.
func (s *Service) ListFunds(ctx context.Context, ownerID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*SinkingFund, int64, error) {
	now := s.now()

	// O filtro de ativos é resolvido na consulta: fundos vencidos ainda não
	// flipados ficam fora da página e da contagem.
	if filters != nil && filters.Status != nil && *filters.Status == StatusActive {
		scoped := *filters
		scoped.AsOf = now
		filters = &scoped
	}

	funds, total, err := s.Repository.GetByOwnerId(ctx, ownerID, filters, pagination)
	if err != nil {
		return nil, 0, err
	}
	for _, f := range funds {
		s.applyExpiry(ctx, f, now)
	}

	// Um fundo que acabou de expirar deixa de satisfazer o filtro de ativos.
	if filters != nil && filters.Status != nil && *filters.Status == StatusActive {
		filtered := funds[:0]
		for _, f := range funds {
			if f.Status == StatusActive {
				filtered = append(filtered, f)
			} else {
				total--
			}
		}
		funds = filtered
	}

	return funds, total, nil
}

func (s *Service) GetFund(ctx context.Context, id, ownerID ulid.ULID) (*SinkingFund, error) {
	entity, err := s.Repository.GetByIdAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	s.applyExpiry(ctx, entity, s.now())
	return entity, nil
}

// CompleteFund marca o fundo como concluído manualmente, antes do prazo.
func (s *Service) CompleteFund(ctx context.Context, id, ownerID ulid.ULID) error {
	if err := s.checkOwnership(ctx, id, ownerID); err != nil {
		return err
	}

	return s.Repository.UpdateFields(ctx, id, map[string]interface{}{
		"status":     StatusCompleted,
		"updated_at": s.now(),
	})
}

// DeleteFund remove o fundo. Membros e contribuições do fundo não são
// removidos em cascata; permanecem alcançáveis por id.
func (s *Service) DeleteFund(ctx context.Context, id, ownerID ulid.ULID) error {
	if err := s.checkOwnership(ctx, id, ownerID); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) CheckFundBelongsToOwner(ctx context.Context, fundID, ownerID ulid.ULID) error {
	return s.checkOwnership(ctx, fundID, ownerID)
}

func (s *Service) checkOwnership(ctx context.Context, fundID, ownerID ulid.ULID) error {
	owns, err := s.Repository.BelongsToOwner(ctx, fundID, ownerID)
	if err != nil {
		return err
	}
	if !owns {
		return appErrors.ErrFundNotFound
	}
	return nil
}

// applyExpiry flipa o status em memória quando o prazo passou e persiste a
// transição em melhor esforço. A falha de escrita é registrada e ignorada:
// o snapshot já carregado continua sendo a resposta.
func (s *Service) applyExpiry(ctx context.Context, f *SinkingFund, now time.Time) {
	if !f.ShouldComplete(now) {
		return
	}

	f.Status = StatusCompleted
	f.UpdatedAt = now

	if err := s.Repository.UpdateFields(ctx, f.Id, map[string]interface{}{
		"status":     StatusCompleted,
		"updated_at": now,
	}); err != nil {
		logger.Warn().
			Err(err).
			Str("fund_id", f.Id.String()).
			Msg("Falha ao persistir conclusão automática do fundo")
	}
}

func validateCreate(request *domaincontracts.FundCreateRequest) error {
	if request.StartDate.IsZero() {
		return appErrors.NewValidationError("start_date", "é obrigatório")
	}
	if request.EndDate.IsZero() {
		return appErrors.NewValidationError("end_date", "é obrigatório")
	}
	if request.EndDate.Before(request.StartDate) {
		return appErrors.NewValidationError("end_date", "deve ser maior ou igual à data de início")
	}
	if request.Amount < 0 {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if request.PaymentType != "" && !PaymentType(request.PaymentType).IsValid() {
		return appErrors.NewValidationError("payment_type", "deve ser Monthly, Weekly, Yearly ou One-time")
	}
	return nil
}
