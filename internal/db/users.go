package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/gatehouse-app/gatehouse/internal/model"
)

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// inserts a new user, returns the new user ID.
// the stored password is always the bcrypt digest, never the plaintext.
func (s *pgStore) CreateUser(firstName, lastName, email string, birthDate time.Time, hashedPassword string) (int, error) {
	query := `
	INSERT INTO users (first_name, last_name, email, birth_date, hashed_password, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, firstName, lastName, email, birthDate, hashedPassword).Scan(&newID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			log.Warn().Str("email", email).Msg("attempt to register an email that is already taken")
			return 0, ErrEmailTaken
		}
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	return newID, nil
}

// fetches a user by email. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, first_name, last_name, email, birth_date, hashed_password, created_at, updated_at
	FROM users
	WHERE email = $1;
	`
	err := s.db.Get(&u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}
