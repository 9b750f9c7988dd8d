package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

const projectSchema = `
CREATE TABLE IF NOT EXISTS projects (
  id                   BIGSERIAL PRIMARY KEY,
  project_id           TEXT NOT NULL UNIQUE,
  project_name         TEXT NOT NULL,
  project_desc         TEXT NOT NULL DEFAULT '',
  members_list         TEXT[] NOT NULL DEFAULT '{}',
  num_of_hardware_sets INTEGER NOT NULL DEFAULT 0,
  hardware_set_id      TEXT[] NOT NULL DEFAULT '{}'
);
`

const projectColumns = `id, project_id, project_name, project_desc, members_list, num_of_hardware_sets, hardware_set_id`

// PostgresRepository provides persistence operations for projects on PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new project repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the projects table if it does not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, projectSchema); err != nil {
		return fmt.Errorf("create projects table: %w", err)
	}
	return nil
}

// Create inserts a project and reads it back by its generated id.
func (r *PostgresRepository) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	const q = `
INSERT INTO projects (project_id, project_name, project_desc, members_list, num_of_hardware_sets, hardware_set_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		p.ProjectID, p.ProjectName, p.ProjectDesc,
		pq.Array(domain.NonNil(p.MembersList)), p.NumOfHardwareSets, pq.Array(domain.NonNil(p.HardwareSetID)),
	).Scan(&id)
	if err != nil {
		// unique violation on project_id
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1;`, id)
	out, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("read inserted project: %w", err)
	}
	return out, nil
}

// List returns all projects in insertion order.
func (r *PostgresRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByProjectID returns the project with the given business key.
func (r *PostgresRepository) GetByProjectID(ctx context.Context, projectID string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE project_id = $1;`, projectID)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update sets the given columns on the matching project.
func (r *PostgresRepository) Update(ctx context.Context, projectID string, fields map[string]interface{}) (*domain.Project, error) {
	fields = sanitizeFields(fields)
	if len(fields) == 0 {
		return r.GetByProjectID(ctx, projectID)
	}

	keys := sortedKeys(fields)
	sets := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys)+1)
	args = append(args, projectID)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", k, i+2))
		v := fields[k]
		if s, ok := v.([]string); ok {
			v = pq.Array(domain.NonNil(s))
		}
		args = append(args, v)
	}

	q := `UPDATE projects SET ` + strings.Join(sets, ", ") + ` WHERE project_id = $1;`
	result, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update project %q: %w", projectID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByProjectID(ctx, projectID)
}

// Delete removes the matching project.
func (r *PostgresRepository) Delete(ctx context.Context, projectID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		id int64
		p  domain.Project
	)
	err := row.Scan(&id, &p.ProjectID, &p.ProjectName, &p.ProjectDesc,
		pq.Array(&p.MembersList), &p.NumOfHardwareSets, pq.Array(&p.HardwareSetID))
	if err != nil {
		return nil, err
	}
	p.ID = normalizeID(id)
	p.MembersList = domain.NonNil(p.MembersList)
	p.HardwareSetID = domain.NonNil(p.HardwareSetID)
	return &p, nil
}
