package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	repomocks "github.com/vfg2006/ads-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

func strPtr(s string) *string {
	return &s
}

func TestService_ListAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)

	statuses := []domain.AdAccountStatus{domain.AdAccountStatusActive}
	accountRepo.EXPECT().ListAccounts(gomock.Any(), statuses).Return([]*domain.AdAccount{
		{ID: "abc123", ExternalID: "1", Name: "Conta", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
	}, nil)

	accounts, err := NewService(accountRepo).ListAdAccounts(context.Background(), statuses)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "abc123", accounts[0].ID)
	assert.Equal(t, domain.PlatformMeta, accounts[0].Platform)
}

func TestService_ListAdAccountsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)

	accountRepo.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := NewService(accountRepo).ListAdAccounts(context.Background(), nil)

	var accountErr *AccountError
	require.True(t, errors.As(err, &accountErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, accountErr.Code)
}

func TestService_SyncAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)
	meta := mocks.NewMockAccountDiscoverer(ctrl)
	google := mocks.NewMockAccountDiscoverer(ctrl)

	accountRepo.EXPECT().ListAccountsMap(gomock.Any()).Return(map[string]string{
		repository.AccountKey(domain.PlatformMeta, "1"): "exist1",
	}, nil)

	meta.EXPECT().DiscoverAccounts(gomock.Any()).Return([]*domain.AdAccount{
		{ExternalID: "act_1", Name: "Conta 1", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
		{ExternalID: "2", Name: "Conta 2", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
		{ExternalID: "2", Name: "Conta 2", Platform: domain.PlatformMeta, Status: domain.AdAccountStatusActive},
	}, nil)
	google.EXPECT().DiscoverAccounts(gomock.Any()).Return(nil, errors.New("not connected"))
	google.EXPECT().Platform().Return(domain.PlatformGoogle)

	accountRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, accounts []*domain.AdAccount) error {
		require.Len(t, accounts, 2)
		assert.Equal(t, "exist1", accounts[0].ID)
		assert.Equal(t, "1", accounts[0].ExternalID)
		assert.Len(t, accounts[1].ID, 6)
		return nil
	})

	response, err := NewService(accountRepo, meta, google).SyncAccounts(context.Background())
	require.NoError(t, err)
	assert.False(t, response.Error)
	assert.Equal(t, 1, response.Quantity)
	assert.Equal(t, "1 contas foram sincronizadas com sucesso", response.Message)
}

func TestService_SyncAccountsAllPlatformsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)
	meta := mocks.NewMockAccountDiscoverer(ctrl)

	accountRepo.EXPECT().ListAccountsMap(gomock.Any()).Return(map[string]string{}, nil)
	meta.EXPECT().DiscoverAccounts(gomock.Any()).Return(nil, errors.New("boom"))
	meta.EXPECT().Platform().Return(domain.PlatformMeta)

	response, err := NewService(accountRepo, meta).SyncAccounts(context.Background())
	require.Error(t, err)
	assert.True(t, response.Error)
	assert.ErrorIs(t, err, ErrPlatformIntegration)
}

func TestService_UpdateAccount(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.UpdateAdAccountRequest
		setup    func(repo *repomocks.MockAccountRepository)
		wantErr  error
		wantCode string
	}{
		{
			name:     "missing id",
			request:  &domain.UpdateAdAccountRequest{},
			setup:    func(repo *repomocks.MockAccountRepository) {},
			wantErr:  ErrAccountIDRequired,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "invalid status",
			request:  &domain.UpdateAdAccountRequest{ID: "abc", Status: strPtr("PAUSED")},
			setup:    func(repo *repomocks.MockAccountRepository) {},
			wantErr:  ErrInvalidStatus,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:    "not found",
			request: &domain.UpdateAdAccountRequest{ID: "abc", Nickname: strPtr("Loja")},
			setup: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID(gomock.Any(), "abc").Return(nil, nil)
			},
			wantErr:  ErrAccountNotFound,
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name:    "update fails",
			request: &domain.UpdateAdAccountRequest{ID: "abc", Nickname: strPtr("Loja")},
			setup: func(repo *repomocks.MockAccountRepository) {
				repo.EXPECT().GetAccountByID(gomock.Any(), "abc").Return(&domain.AdAccount{ID: "abc"}, nil)
				repo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  ErrUpdateAccount,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accountRepo := repomocks.NewMockAccountRepository(ctrl)
			tt.setup(accountRepo)

			_, err := NewService(accountRepo).UpdateAccount(context.Background(), tt.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var accountErr *AccountError
			require.True(t, errors.As(err, &accountErr))
			assert.Equal(t, tt.wantCode, accountErr.Code)
		})
	}
}

func TestService_UpdateAccountNormalizesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := repomocks.NewMockAccountRepository(ctrl)

	accountRepo.EXPECT().GetAccountByID(gomock.Any(), "abc").Return(&domain.AdAccount{ID: "abc"}, nil)
	accountRepo.EXPECT().UpdateAccount(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req *domain.UpdateAdAccountRequest) error {
		assert.Equal(t, "INACTIVE", *req.Status)
		return nil
	})

	response, err := NewService(accountRepo).UpdateAccount(context.Background(), &domain.UpdateAdAccountRequest{
		ID:     "abc",
		Status: strPtr("inactive"),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", response.ID)
	assert.Equal(t, "INACTIVE", *response.Status)
}
