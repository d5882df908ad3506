package customer

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Customer maps an external identity (auth0 subject) to an internal ID.
// Rows are created lazily on first authenticated request.
type Customer struct {
	ID        uuid.UUID
	Auth0ID   string         `db:"auth0_id"`
	Email     sql.NullString `db:"email"`
	Name      sql.NullString `db:"name"`
	Admin     bool           `db:"admin"`
	CreatedAt time.Time      `db:"created_at"`
}
