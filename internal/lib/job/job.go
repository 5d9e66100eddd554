// Package job runs background work on asynq, backed by the same Redis the
// service already depends on.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/go-signup/internal/config"
)

// WelcomeEmailSender delivers the welcome email for a task.
type WelcomeEmailSender interface {
	SendWelcomeEmail(to, name string) error
}

// JobService owns the asynq client used to enqueue tasks and the server
// that processes them.
type JobService struct {
	Client *asynq.Client

	server *asynq.Server
	emails WelcomeEmailSender
	logger *zerolog.Logger
}

// NewJobService creates the asynq client and server. Nothing is processed
// until Start is called.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers sets the dependencies task handlers need.
func (j *JobService) InitHandlers(emails WelcomeEmailSender) {
	j.emails = emails
}

// Start registers handlers and starts processing in the background.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("starting job server: %w", err)
	}

	return nil
}

// EnqueueWelcomeEmail schedules the welcome email for a new account.
func (j *JobService) EnqueueWelcomeEmail(ctx context.Context, to, name string) error {
	task, err := NewWelcomeEmailTask(to, name)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskWelcome, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("welcome email enqueued")

	return nil
}

// Stop waits for running tasks and closes the Redis connections.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
