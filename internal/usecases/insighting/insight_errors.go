package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrAccountNotFound   = errors.New("conta não encontrada")
	ErrInvalidPeriod     = errors.New("período inválido")
	ErrInvalidLevel      = errors.New("nível de insight inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// InsightError carrega o código de erro da API e a conta consultada
type InsightError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(err error, code string, accountID string, details string) *InsightError {
	return &InsightError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
