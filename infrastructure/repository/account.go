package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	accountsTable   = "accounts"
	accountsColumns = "a.id, a.external_id, a.platform, a.name, a.nickname, a.currency, a.business_id, a.business_name, a.status"
)

//go:generate mockgen -source=account.go -destination=mocks/mock_account.go -package=mocks

type AccountRepository interface {
	GetAccountByID(ctx context.Context, accountID string) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error)
	ListAccountsMap(ctx context.Context) (map[string]string, error)
	SaveOrUpdate(ctx context.Context, accounts []*domain.AdAccount) error
	UpdateAccount(ctx context.Context, account *domain.UpdateAdAccountRequest) error
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// GetAccountByID retorna nil, nil quando a conta não existe
func (a *accountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select(accountsColumns).
		From(accountsTable + " a").
		Where(squirrel.Eq{"a.id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc, err := scanAccount(a.conn.QueryRowContext(ctx, accountsSQL, accountsArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar conta %s: %w", accountID, err)
	}

	return acc, nil
}

func (a *accountRepository) ListAccounts(ctx context.Context, availableStatus []domain.AdAccountStatus) ([]*domain.AdAccount, error) {
	queryBuilder := squirrel.
		Select(accountsColumns).
		From(accountsTable + " a").
		OrderBy("COALESCE(a.nickname, a.name) ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(availableStatus) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.status": availableStatus})
	}

	accountsSQL, accountsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accounts, nil
}

// ListAccountsMap retorna platform:external_id -> id de todas as contas conhecidas
func (a *accountRepository) ListAccountsMap(ctx context.Context) (map[string]string, error) {
	accountsSQL, accountsArgs, err := squirrel.
		Select("a.id, a.external_id, a.platform").
		From(accountsTable + " a").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := a.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]string)
	for rows.Next() {
		var id, externalID, platform string
		if err := rows.Scan(&id, &externalID, &platform); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a conta: %w", err)
		}
		accountsMap[AccountKey(domain.Platform(platform), externalID)] = id
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return accountsMap, nil
}

// AccountKey é a chave composta usada por ListAccountsMap
func AccountKey(platform domain.Platform, externalID string) string {
	return fmt.Sprintf("%s:%s", platform, externalID)
}

func (a *accountRepository) SaveOrUpdate(ctx context.Context, accounts []*domain.AdAccount) error {
	if len(accounts) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(accountsTable).
		Columns("id", "external_id", "platform", "name", "nickname", "currency", "business_id", "business_name", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		query = query.Values(
			account.ID,
			account.ExternalID,
			account.Platform,
			account.Name,
			account.Nickname,
			account.Currency,
			account.BusinessManagerID,
			account.BusinessManagerName,
			account.Status,
		)
	}

	// Apelido e status são editados pelo usuário e não são sobrescritos
	query = query.Suffix(`
			ON CONFLICT (external_id, platform) DO UPDATE SET
				name = EXCLUDED.name,
				currency = EXCLUDED.currency,
				business_id = EXCLUDED.business_id,
				business_name = EXCLUDED.business_name,
				nickname = COALESCE(accounts.nickname, EXCLUDED.nickname),
				updated_at = NOW()
		`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = a.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}

func (a *accountRepository) UpdateAccount(ctx context.Context, account *domain.UpdateAdAccountRequest) error {
	if account.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update(accountsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if account.Nickname != nil {
		queryBuilder = queryBuilder.Set("nickname", *account.Nickname)
	}

	if account.Status != nil {
		queryBuilder = queryBuilder.Set("status", *account.Status)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := a.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return wrapExecError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.AdAccount, error) {
	acc := &domain.AdAccount{}

	if err := row.Scan(
		&acc.ID,
		&acc.ExternalID,
		&acc.Platform,
		&acc.Name,
		&acc.Nickname,
		&acc.Currency,
		&acc.BusinessManagerID,
		&acc.BusinessManagerName,
		&acc.Status,
	); err != nil {
		return nil, err
	}

	return acc, nil
}
