package rabbitmq

import "context"

// PublisherInterface is what the services depend on; publish failures are
// logged by callers, never surfaced to the request.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
