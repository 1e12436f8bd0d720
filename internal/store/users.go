package store

import (
	"context"
	"time"

	"github.com/NotAnsar/orava-api/internal/auth"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, created_at, f_name, l_name, email, role, password`

func scanUser(row pgx.Row) (User, error) {
	var (
		u         User
		id        pgtype.UUID
		firstName pgtype.Text
		lastName  pgtype.Text
		role      pgtype.Text
	)
	if err := row.Scan(&id, &u.CreatedAt, &firstName, &lastName, &u.Email, &role, &u.PasswordHash); err != nil {
		return User{}, err
	}
	u.ID = uuidFrom(id)
	u.FirstName = textOr(firstName, "")
	u.LastName = textOr(lastName, "")
	if parsed, ok := auth.ParseRole(textOr(role, "")); ok {
		u.Role = parsed
	}
	return u, nil
}

func (s *Store) Users(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `select `+userColumns+` from "user" order by created_at desc`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) UserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `select `+userColumns+` from "user" where id = $1`, pgUUID(id)))
}

func (s *Store) UserByEmail(ctx context.Context, email string) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, `select `+userColumns+` from "user" where lower(email) = lower($1)`, email))
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, `select exists(select 1 from "user" where lower(email) = lower($1))`, email).Scan(&exists)
	return exists, err
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.QueryRow(ctx, `select count(*) from "user"`).Scan(&count)
	return count, err
}

func (s *Store) CreateUser(ctx context.Context, u User) (User, error) {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	_, err := s.DB.Exec(ctx,
		`insert into "user" (id, created_at, f_name, l_name, email, role, password)
		 values ($1, $2, $3, $4, $5, $6, $7)`,
		pgUUID(u.ID), u.CreatedAt, u.FirstName, u.LastName, u.Email, string(u.Role), u.PasswordHash)
	return u, err
}

func (s *Store) UpdateUser(ctx context.Context, u User) error {
	return expectOneRow(s.DB.Exec(ctx,
		`update "user" set f_name = $2, l_name = $3, email = $4, role = $5 where id = $1`,
		pgUUID(u.ID), u.FirstName, u.LastName, u.Email, string(u.Role)))
}

func (s *Store) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return expectOneRow(s.DB.Exec(ctx, `update "user" set password = $2 where id = $1`, pgUUID(id), passwordHash))
}

func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx, `delete from "user" where id = $1`, pgUUID(id)))
}
