package postgres

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate aplica en orden los scripts de migrations/ que aún no figuran en schema_migrations.
// Cada script corre en su propia transacción. Devuelve los nombres aplicados.
func Migrate(ctx context.Context, runner *TxRunner) ([]string, error) {
	const createTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
	    migration  TEXT PRIMARY KEY,
	    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	if _, err := runner.pool.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("migrate: crear schema_migrations: %w", err)
	}

	applied, err := appliedMigrations(ctx, runner.pool)
	if err != nil {
		return nil, err
	}

	names, err := migrationNames()
	if err != nil {
		return nil, err
	}

	var done []string
	for _, name := range names {
		if applied[name] {
			continue
		}
		content, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return done, fmt.Errorf("migrate: leer %s: %w", name, err)
		}
		err = runner.Run(ctx, func(q Querier) error {
			if _, err := q.Exec(ctx, string(content)); err != nil {
				return err
			}
			_, err := q.Exec(ctx, `INSERT INTO schema_migrations (migration) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return done, fmt.Errorf("migrate: aplicar %s: %w", name, err)
		}
		done = append(done, name)
	}
	return done, nil
}

func appliedMigrations(ctx context.Context, q Querier) (map[string]bool, error) {
	rows, err := q.Query(ctx, `SELECT migration FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("migrate: listar aplicadas: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("migrate: scan: %w", err)
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

// migrationNames nombres de los .sql embebidos en orden lexicográfico.
func migrationNames() ([]string, error) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("migrate: leer directorio: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
