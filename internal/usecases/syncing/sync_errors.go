package syncing

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound      = errors.New("conta não encontrada")
	ErrInvalidPeriod        = errors.New("período inválido")
	ErrPlatformNotSupported = errors.New("plataforma sem integração configurada")
	ErrSyncInProgress       = errors.New("sincronização da conta já em andamento")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// SyncError carrega o código de erro da API e a conta envolvida
type SyncError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *SyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func NewSyncError(err error, code string, accountID string, details string) *SyncError {
	return &SyncError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
