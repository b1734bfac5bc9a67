package command

import "context"

type Client interface {
	// HandleCommand answers operator commands sent to the bot until ctx is done.
	HandleCommand(ctx context.Context) error
}
