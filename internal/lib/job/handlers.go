package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
)

var errNoEmailSender = errors.New("welcome email sender not initialized")

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that cannot be decoded will never succeed.
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.emails == nil {
		return errNoEmailSender
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("processing welcome email task")

	if err := j.emails.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("successfully sent welcome email")

	return nil
}
