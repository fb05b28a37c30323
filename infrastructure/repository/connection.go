package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const connectionsTable = "platform_connections"

//go:generate mockgen -source=connection.go -destination=mocks/mock_connection.go -package=mocks

// TokenCipher cifra os tokens antes de irem para o banco
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

type ConnectionRepository interface {
	GetByPlatform(ctx context.Context, platform domain.Platform) (*domain.PlatformConnection, error)
	Save(ctx context.Context, connection *domain.PlatformConnection) error
}

type connectionRepository struct {
	conn   *postgres.Connection
	cipher TokenCipher
}

func NewConnectionRepository(conn *postgres.Connection, cipher TokenCipher) ConnectionRepository {
	return &connectionRepository{
		conn:   conn,
		cipher: cipher,
	}
}

// GetByPlatform retorna nil, nil quando a plataforma ainda não foi conectada
func (r *connectionRepository) GetByPlatform(ctx context.Context, platform domain.Platform) (*domain.PlatformConnection, error) {
	query, args, err := squirrel.
		Select("id, platform, access_token, refresh_token, token_type, expires_at, created_at, updated_at").
		From(connectionsTable).
		Where(squirrel.Eq{"platform": platform}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	connection := &domain.PlatformConnection{}
	var accessToken, refreshToken string
	var expiresAt sql.NullTime

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&connection.ID,
		&connection.Platform,
		&accessToken,
		&refreshToken,
		&connection.TokenType,
		&expiresAt,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar conexão %s: %w", platform, err)
	}

	if connection.AccessToken, err = r.cipher.Decrypt(accessToken); err != nil {
		return nil, fmt.Errorf("erro ao decifrar access token de %s: %w", platform, err)
	}

	if connection.RefreshToken, err = r.cipher.Decrypt(refreshToken); err != nil {
		return nil, fmt.Errorf("erro ao decifrar refresh token de %s: %w", platform, err)
	}

	if expiresAt.Valid {
		connection.ExpiresAt = expiresAt.Time
	}

	return connection, nil
}

// Save grava a conexão da plataforma, substituindo a anterior
func (r *connectionRepository) Save(ctx context.Context, connection *domain.PlatformConnection) error {
	accessToken, err := r.cipher.Encrypt(connection.AccessToken)
	if err != nil {
		return fmt.Errorf("erro ao cifrar access token: %w", err)
	}

	refreshToken, err := r.cipher.Encrypt(connection.RefreshToken)
	if err != nil {
		return fmt.Errorf("erro ao cifrar refresh token: %w", err)
	}

	var expiresAt *time.Time
	if !connection.ExpiresAt.IsZero() {
		expiresAt = &connection.ExpiresAt
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(connectionsTable).
		Columns("id", "platform", "access_token", "refresh_token", "token_type", "expires_at").
		Values(connection.ID, connection.Platform, accessToken, refreshToken, connection.TokenType, expiresAt).
		Suffix(`
			ON CONFLICT (platform) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = CASE WHEN EXCLUDED.refresh_token = '' THEN platform_connections.refresh_token ELSE EXCLUDED.refresh_token END,
				token_type = EXCLUDED.token_type,
				expires_at = EXCLUDED.expires_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapExecError(err)
	}

	return nil
}
