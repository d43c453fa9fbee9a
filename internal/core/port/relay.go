package port

import (
	"context"

	"clawpic/internal/core/domain"
)

type MessageRelay interface {
	// Send delivers the message to the gateway exactly once. Any failure is
	// terminal for the current invocation, callers do not retry.
	Send(ctx context.Context, message domain.RelayMessage) error
}
