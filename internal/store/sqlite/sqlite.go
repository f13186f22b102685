package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS ads_data (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    project_name TEXT    NOT NULL,
    project_id   TEXT    NOT NULL,
    source       TEXT    NOT NULL,
    source_url   TEXT,
    type         TEXT    NOT NULL DEFAULT 'online',
    click_count  INTEGER NOT NULL DEFAULT 0,
    cost         REAL    NOT NULL DEFAULT 0,
    score        REAL    NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_ads_data_project_id ON ads_data (project_id);
`

// Open opens (or creates) a SQLite database at the given path and enables WAL journal mode.
// ":memory:" opens a private in-memory database pinned to one connection.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	inMemory := path == ":memory:"
	if !inMemory {
		// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if inMemory {
		db.SetMaxOpenConns(1)
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
		return fmt.Errorf("sqlite schema: %w", err)
	}
	return nil
}

// NewWithDB constructs a SQLite-backed store over an open connection.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Ads() store.Ads { return &ads{db: s.db} }
func (s *sqliteStore) Close() error   { return s.db.Close() }

// HealthPing implements health.HealthPinger for the SQLite-backed store.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- Ads ---
type ads struct{ db *sql.DB }

func (a *ads) Create(ctx context.Context, ad *model.Ad) (*model.Ad, error) {
	out := *ad
	if out.Type == "" {
		out.Type = model.DefaultAdType
	}
	res, err := a.db.ExecContext(ctx, `
        INSERT INTO ads_data (project_name, project_id, source, source_url, type, click_count, cost, score)
        VALUES (?,?,?,?,?,?,?,?)
    `, out.ProjectName, out.ProjectID, out.Source, out.SourceURL, out.Type, out.ClickCount, out.Cost, out.Score)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out.ID = id
	return &out, nil
}

func (a *ads) List(ctx context.Context, req model.ListAdsRequest) ([]*model.Ad, error) {
	rows, err := a.db.QueryContext(ctx, `
        SELECT id, project_name, project_id, source, source_url, type, click_count, cost, score
        FROM ads_data ORDER BY id LIMIT ? OFFSET ?
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
        SELECT COUNT(*), COALESCE(SUM(click_count), 0), COALESCE(SUM(cost), 0.0), COALESCE(AVG(score), 0.0)
        FROM ads_data
    `)
	if err := row.Scan(&out.TotalProjects, &out.TotalClicks, &out.TotalCost, &out.AverageScore); err != nil {
		return nil, err
	}
	return &out, nil
}
