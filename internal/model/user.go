package model

import "time"

type User struct {
    ID             int       `db:"id"`
    FirstName      string    `db:"first_name"`
    LastName       string    `db:"last_name"`
    Email          string    `db:"email"`
    BirthDate      time.Time `db:"birth_date"`
    HashedPassword string    `db:"hashed_password"`
    CreatedAt      time.Time `db:"created_at"`
    UpdatedAt      time.Time `db:"updated_at"`
}
