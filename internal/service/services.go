// Package service contains the business logic between handlers and
// repositories.
package service

import (
	"github.com/deppfellow/go-signup/internal/lib/job"
	"github.com/deppfellow/go-signup/internal/repository"
	"github.com/deppfellow/go-signup/internal/server"
)

type Services struct {
	Account *AccountService
	Job     *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var welcome WelcomeEmailEnqueuer
	if s.Config.Signup.WelcomeEmailEnabled && s.Job != nil {
		welcome = s.Job
	}

	accountService, err := NewAccountService(
		repos.Account,
		NewBcryptHasher(s.Config.Signup.BcryptCost),
		welcome,
		s.Logger,
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		Account: accountService,
		Job:     s.Job,
	}, nil
}
