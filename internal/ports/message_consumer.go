package ports

import "context"

// MessageConsumer — фоновый потребитель запросов на выгрузку.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
