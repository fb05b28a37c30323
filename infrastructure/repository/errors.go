package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var ErrNotFound = errors.New("repository: registro não encontrado")

// wrapExecError padroniza os erros de execução, expondo o código do Postgres quando houver
func wrapExecError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
