package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
)

const schemaMigrationsTable = "schema_migrations"

// Migrate aplica, em ordem de nome, os arquivos .sql ainda não registrados em
// schema_migrations. Cada arquivo roda em sua própria transação.
func (c *Connection) Migrate(ctx context.Context, files fs.FS) (int, error) {
	_, err := c.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name       VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar tabela de migrações: %w", err)
	}

	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return 0, fmt.Errorf("erro ao listar migrações: %w", err)
	}
	sort.Strings(names)

	applied := 0
	for _, name := range names {
		done, err := c.migrationApplied(ctx, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		script, err := fs.ReadFile(files, name)
		if err != nil {
			return applied, fmt.Errorf("erro ao ler migração %s: %w", name, err)
		}

		err = c.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(script)); err != nil {
				return err
			}

			query, args, err := squirrel.
				Insert(schemaMigrationsTable).
				Columns("name").
				Values(name).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("erro ao aplicar migração %s: %w", name, err)
		}

		logrus.WithField("migration", name).Info("Migração aplicada")
		applied++
	}

	return applied, nil
}

func (c *Connection) migrationApplied(ctx context.Context, name string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(schemaMigrationsTable).
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := c.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao consultar migração %s: %w", name, err)
	}

	return count > 0, nil
}
