package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func (s *Store) CreatePasswordResetToken(ctx context.Context, userID uuid.UUID, token string, expiry time.Time) (PasswordResetToken, error) {
	t := PasswordResetToken{
		ID:         uuid.New(),
		UserID:     userID,
		Token:      token,
		ExpiryDate: expiry,
	}
	_, err := s.DB.Exec(ctx,
		`insert into password_reset_tokens (id, user_id, token, expiry_date, used)
		 values ($1, $2, $3, $4, false)`,
		pgUUID(t.ID), pgUUID(t.UserID), t.Token, t.ExpiryDate)
	return t, err
}

func (s *Store) DeletePasswordResetTokensForUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.DB.Exec(ctx, `delete from password_reset_tokens where user_id = $1`, pgUUID(userID))
	return err
}

func (s *Store) PasswordResetTokenByValue(ctx context.Context, token string) (PasswordResetToken, error) {
	var (
		t      PasswordResetToken
		id     pgtype.UUID
		userID pgtype.UUID
	)
	err := s.DB.QueryRow(ctx,
		`select id, user_id, token, expiry_date, used
		 from password_reset_tokens where token = $1`, token).
		Scan(&id, &userID, &t.Token, &t.ExpiryDate, &t.Used)
	if err != nil {
		return PasswordResetToken{}, err
	}
	t.ID = uuidFrom(id)
	t.UserID = uuidFrom(userID)
	return t, nil
}

func (s *Store) MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	return expectOneRow(s.DB.Exec(ctx,
		`update password_reset_tokens set used = true where id = $1`, pgUUID(id)))
}

// PrunePasswordResetTokens drops tokens that are spent or past expiry.
func (s *Store) PrunePasswordResetTokens(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx,
		`delete from password_reset_tokens where used = true or expiry_date < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
