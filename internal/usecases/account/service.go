package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type AccountService interface {
	UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error)
	ListAdAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error)
	SyncAccounts(ctx context.Context) (*domain.SyncAccountsResponse, error)
}

// AccountDiscoverer lista as contas de anúncio visíveis em uma plataforma
type AccountDiscoverer interface {
	Platform() domain.Platform
	DiscoverAccounts(ctx context.Context) ([]*domain.AdAccount, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	discoverers       []AccountDiscoverer
}

func NewService(accountRepository repository.AccountRepository, discoverers ...AccountDiscoverer) *Service {
	return &Service{
		accountRepository: accountRepository,
		discoverers:       discoverers,
	}
}

func (s *Service) ListAdAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(ctx, availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	adAccountsResponse := make([]*domain.AdAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		adAccountsResponse = append(adAccountsResponse, &domain.AdAccountResponse{
			ID:         account.ID,
			ExternalID: account.ExternalID,
			Name:       account.Name,
			Nickname:   account.Nickname,
			Platform:   account.Platform,
			Status:     account.Status,
		})
	}

	return adAccountsResponse, nil
}

// SyncAccounts descobre as contas de todas as plataformas conectadas e faz upsert.
// Plataformas sem conexão ou com falha são ignoradas; o erro só sobe quando nenhuma responde.
func (s *Service) SyncAccounts(ctx context.Context) (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	existingAccounts, err := s.accountRepository.ListAccountsMap(ctx)
	if err != nil {
		logrus.WithField("error", err).Error("Error getting ad accounts from database")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	discovered := make([]*domain.AdAccount, 0)
	failed := 0

	for _, discoverer := range s.discoverers {
		accounts, err := discoverer.DiscoverAccounts(ctx)
		if err != nil {
			failed++
			logrus.WithFields(logrus.Fields{
				"platform": discoverer.Platform(),
				"error":    err.Error(),
			}).Error("Error getting ad accounts from integrator")
			continue
		}
		discovered = append(discovered, accounts...)
	}

	if failed > 0 && failed == len(s.discoverers) {
		return response, NewAccountError(ErrPlatformIntegration, apiErrors.ErrExternalService, "Falha ao obter contas das plataformas de anúncios")
	}

	// uma conta compartilhada entre Business Managers aparece mais de uma vez
	seen := make(map[string]bool, len(discovered))
	accounts := make([]*domain.AdAccount, 0, len(discovered))
	created := 0

	for _, acc := range discovered {
		acc.ExternalID = strings.TrimPrefix(acc.ExternalID, "act_")

		key := repository.AccountKey(acc.Platform, acc.ExternalID)
		if seen[key] {
			continue
		}
		seen[key] = true
		accounts = append(accounts, acc)

		if id, exists := existingAccounts[key]; exists {
			acc.ID = id
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
		}
		acc.ID = accountID
		created++
	}

	if err := s.accountRepository.SaveOrUpdate(ctx, accounts); err != nil {
		return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
	}

	logrus.WithFields(logrus.Fields{
		"discovered": len(accounts),
		"created":    created,
	}).Info("accounts were successfully synced")

	response.Quantity = created
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", created)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(ctx context.Context, request *domain.UpdateAdAccountRequest) (*domain.UpdateAdAccountResponse, error) {
	if request.ID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório")
	}

	if request.Status != nil {
		status := domain.AdAccountStatus(strings.ToUpper(*request.Status))
		if status != domain.AdAccountStatusActive && status != domain.AdAccountStatusInactive {
			return nil, NewAccountErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidFormat, request.ID, "Status deve ser ACTIVE ou INACTIVE")
		}
		normalized := string(status)
		request.Status = &normalized
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(ctx, request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
	}

	err = s.accountRepository.UpdateAccount(ctx, request)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrResourceNotFound, request.ID, "Conta não encontrada")
		}
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	return &domain.UpdateAdAccountResponse{
		ID:       request.ID,
		Nickname: request.Nickname,
		Status:   request.Status,
	}, nil
}
