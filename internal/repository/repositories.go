package repository

import (
	"github.com/deppfellow/flats-api/internal/server"
)

// Repositories groups every repository the services depend on.
type Repositories struct {
	Flats FlatRepository
}

// NewRepositories builds the Postgres-backed repositories on the server's
// connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Flats: NewFlatRepository(s.DB.Pool),
	}
}
