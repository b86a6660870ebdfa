// exposes a Store interface that is passed to the site handlers
package db

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gatehouse-app/gatehouse/internal/model"
)

// returned by CreateUser when the email uniqueness constraint is violated.
var ErrEmailTaken = errors.New("email is already taken")

type Store interface {
	CreateUser(firstName, lastName, email string, birthDate time.Time, hashedPassword string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
