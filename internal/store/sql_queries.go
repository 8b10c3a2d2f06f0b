package store

import (
	"time"

	"github.com/MKhiriev/ucn-accounts/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order shared by the INSERT, every SELECT and
// scanUser.
var userColumns = []string{
	"id", "email", "rut", "birth_date", "name", "password_hash", "created_at", "updated_at",
}


// insertUserQuery builds the INSERT for a new user. The caller supplies the
// id and timestamps.
func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.RUT, user.BirthDate, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

// findUserQuery builds a single-row SELECT matching every set field of
// filter. Conditions are added in a fixed order: email, rut, id exclusion.
func (db *DB) findUserQuery(filter models.UserFilter) (string, []any, error) {
	query := db.builder.Select(userColumns...).From(usersTable)

	if filter.Email != "" {
		query = query.Where(sq.Eq{"email": filter.Email})
	}
	if filter.RUT != "" {
		query = query.Where(sq.Eq{"rut": filter.RUT})
	}
	if filter.ExcludeID != "" {
		query = query.Where(sq.NotEq{"id": filter.ExcludeID})
	}

	return query.OrderBy("created_at").Limit(1).ToSql()
}

func (db *DB) findUserByIDQuery(id string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// updateUserQuery overwrites the mutable columns of user.ID.
func (db *DB) updateUserQuery(user models.User, now time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("email", user.Email).
		Set("name", user.Name).
		Set("birth_date", user.BirthDate).
		Set("password_hash", user.PasswordHash).
		Set("updated_at", now).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.RUT,
		&user.BirthDate,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}
