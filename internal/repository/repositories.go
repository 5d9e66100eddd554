// Package repository holds the SQL behind the service layer.
//
// Repositories take a pgx pool (or anything with the same query methods)
// and return domain models; driver errors are wrapped with sqlerr so
// callers can classify them.
package repository

import (
	"github.com/deppfellow/go-signup/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Account *AccountRepository
}

// NewRepositories builds the repositories over the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(s.DB.Pool),
	}
}
