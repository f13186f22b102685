package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS ads_data (
    id           BIGSERIAL PRIMARY KEY,
    project_name TEXT             NOT NULL,
    project_id   TEXT             NOT NULL,
    source       TEXT             NOT NULL,
    source_url   TEXT,
    type         TEXT             NOT NULL DEFAULT 'online',
    click_count  BIGINT           NOT NULL DEFAULT 0,
    cost         DOUBLE PRECISION NOT NULL DEFAULT 0,
    score        DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_ads_data_project_id ON ads_data (project_id);
`

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the ads table when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Ads() store.Ads { return &ads{db: s.db} }
func (s *pgStore) Close() error   { return s.db.Close() }

// HealthPing implements health.HealthPinger for Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Ads ---
type ads struct{ db *sql.DB }

func (a *ads) Create(ctx context.Context, ad *model.Ad) (*model.Ad, error) {
	out := *ad
	if out.Type == "" {
		out.Type = model.DefaultAdType
	}
	row := a.db.QueryRowContext(ctx, `
        INSERT INTO ads_data (project_name, project_id, source, source_url, type, click_count, cost, score)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id
    `, out.ProjectName, out.ProjectID, out.Source, out.SourceURL, out.Type, out.ClickCount, out.Cost, out.Score)
	if err := row.Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *ads) List(ctx context.Context, req model.ListAdsRequest) ([]*model.Ad, error) {
	rows, err := a.db.QueryContext(ctx, `
        SELECT id, project_name, project_id, source, source_url, type, click_count, cost, score
        FROM ads_data ORDER BY id LIMIT $1 OFFSET $2
    `, req.Limit, req.Skip)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	res := make([]*model.Ad, 0)
	for rows.Next() {
		var ad model.Ad
		if err := rows.Scan(&ad.ID, &ad.ProjectName, &ad.ProjectID, &ad.Source, &ad.SourceURL, &ad.Type, &ad.ClickCount, &ad.Cost, &ad.Score); err != nil {
			return nil, err
		}
		res = append(res, &ad)
	}
	return res, rows.Err()
}

func (a *ads) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	row := a.db.QueryRowContext(ctx, `
        SELECT COUNT(*),
               COALESCE(SUM(click_count), 0)::BIGINT,
               COALESCE(SUM(cost), 0)::DOUBLE PRECISION,
               COALESCE(AVG(score), 0)::DOUBLE PRECISION
        FROM ads_data
    `)
	if err := row.Scan(&out.TotalProjects, &out.TotalClicks, &out.TotalCost, &out.AverageScore); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bootstrap performs a connectivity check and applies the schema.
func Bootstrap(ctx context.Context, dsn string) error {
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return EnsureSchema(ctx, db)
}
