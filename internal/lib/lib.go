// Package lib groups integrations that sit beside the request layers:
// background jobs (asynq over Redis) and transactional email (Resend).
package lib
