package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

func (s *Store) Categories(ctx context.Context) ([]Category, error) {
	rows, err := s.DB.Query(ctx, `select id, name, created_at from category order by created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var (
			c  Category
			id pgtype.UUID
		)
		if err := rows.Scan(&id, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID = uuidFrom(id)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) CategoryByID(ctx context.Context, id uuid.UUID) (Category, error) {
	var (
		c     Category
		rowID pgtype.UUID
	)
	err := s.DB.QueryRow(ctx, `select id, name, created_at from category where id = $1`, pgUUID(id)).
		Scan(&rowID, &c.Name, &c.CreatedAt)
	if err != nil {
		return Category{}, err
	}
	c.ID = uuidFrom(rowID)
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, name string) (Category, error) {
	c := Category{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	_, err := s.DB.Exec(ctx, `insert into category (id, name, created_at) values ($1, $2, $3)`,
		pgUUID(c.ID), c.Name, c.CreatedAt)
	return c, err
}

func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, name string) error {
	return expectOneRow(s.DB.Exec(ctx, `update category set name = $2 where id = $1`, pgUUID(id), name))
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from category where id = $1`, pgUUID(id)))
}

func (s *Store) Colors(ctx context.Context) ([]Color, error) {
	rows, err := s.DB.Query(ctx, `select id, name, value, created_at from colors order by created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colors := make([]Color, 0)
	for rows.Next() {
		var (
			c     Color
			id    pgtype.UUID
			value pgtype.Text
		)
		if err := rows.Scan(&id, &c.Name, &value, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.ID = uuidFrom(id)
		c.Value = textPtr(value)
		colors = append(colors, c)
	}
	return colors, rows.Err()
}

func (s *Store) ColorByID(ctx context.Context, id uuid.UUID) (Color, error) {
	var (
		c     Color
		rowID pgtype.UUID
		value pgtype.Text
	)
	err := s.DB.QueryRow(ctx, `select id, name, value, created_at from colors where id = $1`, pgUUID(id)).
		Scan(&rowID, &c.Name, &value, &c.CreatedAt)
	if err != nil {
		return Color{}, err
	}
	c.ID = uuidFrom(rowID)
	c.Value = textPtr(value)
	return c, nil
}

func (s *Store) CreateColor(ctx context.Context, name string, value *string) (Color, error) {
	c := Color{ID: uuid.New(), Name: name, Value: value, CreatedAt: time.Now()}
	_, err := s.DB.Exec(ctx, `insert into colors (id, name, value, created_at) values ($1, $2, $3, $4)`,
		pgUUID(c.ID), c.Name, c.Value, c.CreatedAt)
	return c, err
}

func (s *Store) UpdateColor(ctx context.Context, id uuid.UUID, name string, value *string) error {
	return expectOneRow(s.DB.Exec(ctx, `update colors set name = $2, value = $3 where id = $1`,
		pgUUID(id), name, value))
}

func (s *Store) DeleteColor(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from colors where id = $1`, pgUUID(id)))
}

func (s *Store) Sizes(ctx context.Context) ([]Size, error) {
	rows, err := s.DB.Query(ctx, `select id, name, fullname, created_at from sizes order by created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sizes := make([]Size, 0)
	for rows.Next() {
		var (
			sz       Size
			id       pgtype.UUID
			fullName pgtype.Text
		)
		if err := rows.Scan(&id, &sz.Name, &fullName, &sz.CreatedAt); err != nil {
			return nil, err
		}
		sz.ID = uuidFrom(id)
		sz.FullName = textPtr(fullName)
		sizes = append(sizes, sz)
	}
	return sizes, rows.Err()
}

func (s *Store) SizeByID(ctx context.Context, id uuid.UUID) (Size, error) {
	var (
		sz       Size
		rowID    pgtype.UUID
		fullName pgtype.Text
	)
	err := s.DB.QueryRow(ctx, `select id, name, fullname, created_at from sizes where id = $1`, pgUUID(id)).
		Scan(&rowID, &sz.Name, &fullName, &sz.CreatedAt)
	if err != nil {
		return Size{}, err
	}
	sz.ID = uuidFrom(rowID)
	sz.FullName = textPtr(fullName)
	return sz, nil
}

func (s *Store) CreateSize(ctx context.Context, name string, fullName *string) (Size, error) {
	sz := Size{ID: uuid.New(), Name: name, FullName: fullName, CreatedAt: time.Now()}
	_, err := s.DB.Exec(ctx, `insert into sizes (id, name, fullname, created_at) values ($1, $2, $3, $4)`,
		pgUUID(sz.ID), sz.Name, sz.FullName, sz.CreatedAt)
	return sz, err
}

func (s *Store) UpdateSize(ctx context.Context, id uuid.UUID, name string, fullName *string) error {
	return expectOneRow(s.DB.Exec(ctx, `update sizes set name = $2, fullname = $3 where id = $1`,
		pgUUID(id), name, fullName))
}

func (s *Store) DeleteSize(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from sizes where id = $1`, pgUUID(id)))
}

func expectOneRow(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
