package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func scanTask(row pgx.Row) (Task, error) {
	var (
		t           Task
		id          pgtype.UUID
		description pgtype.Text
		status      pgtype.Text
		priority    pgtype.Text
	)
	err := row.Scan(&id, &t.Title, &description, &status, &priority, &t.CreatedAt)
	if err != nil {
		return Task{}, err
	}
	t.ID = uuidFrom(id)
	t.Description = textPtr(description)
	if parsed, ok := ParseTaskStatus(textOr(status, "")); ok {
		t.Status = parsed
	}
	if parsed, ok := ParseTaskPriority(textOr(priority, "")); ok {
		t.Priority = parsed
	}
	return t, nil
}

func (s *Store) Tasks(ctx context.Context) ([]Task, error) {
	rows, err := s.DB.Query(ctx,
		`select id, title, description, status, priority, created_at from tasks order by created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) TaskByID(ctx context.Context, id uuid.UUID) (Task, error) {
	return scanTask(s.DB.QueryRow(ctx,
		`select id, title, description, status, priority, created_at from tasks where id = $1`, pgUUID(id)))
}

func (s *Store) CreateTask(ctx context.Context, t Task) (Task, error) {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	_, err := s.DB.Exec(ctx,
		`insert into tasks (id, title, description, status, priority, created_at)
		 values ($1, $2, $3, $4, $5, $6)`,
		pgUUID(t.ID), t.Title, t.Description, string(t.Status), string(t.Priority), t.CreatedAt)
	return t, err
}

func (s *Store) UpdateTask(ctx context.Context, t Task) error {
	return expectOneRow(s.DB.Exec(ctx,
		`update tasks set title = $2, description = $3, status = $4, priority = $5 where id = $1`,
		pgUUID(t.ID), t.Title, t.Description, string(t.Status), string(t.Priority)))
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from tasks where id = $1`, pgUUID(id)))
}
