package attempts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sambhav234/Quiz-Generator/internal/quiz"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Record(ctx context.Context, a Attempt) error {
	buf, err := json.Marshal(a.Results)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO attempts (id,subject,source_type,source_id,score,correct,total,results_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.Subject, a.SourceType, a.SourceID, a.Score, a.Correct, a.Total, string(buf), a.CreatedAt)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Attempt, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,subject,source_type,source_id,score,correct,total,results_json,created_at
		FROM attempts WHERE id=$1`, id)
	return scanAttempt(row.Scan)
}

func (s *SQLStore) List(ctx context.Context, opts ListOpts) ([]Attempt, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	q := `SELECT id,subject,source_type,source_id,score,correct,total,results_json,created_at FROM attempts`
	args := []interface{}{}
	if opts.Subject != "" {
		q += ` WHERE subject=$1`
		args = append(args, opts.Subject)
	}
	// LIMIT/OFFSET are validated ints; placeholders would renumber with the
	// optional subject filter.
	q += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT %d OFFSET %d`, limit, offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM attempts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Purge(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM attempts`)
	return err
}

func scanAttempt(scan func(...interface{}) error) (Attempt, error) {
	var a Attempt
	var rjson string
	err := scan(&a.ID, &a.Subject, &a.SourceType, &a.SourceID, &a.Score, &a.Correct, &a.Total, &rjson, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Attempt{}, ErrNotFound
		}
		return Attempt{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &a.Results); err != nil {
		a.Results = []quiz.AnswerResult{}
	}
	return a, nil
}
