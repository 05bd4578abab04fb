package config

import (
	"context"
	"fmt"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ContractClose releases the contract backend (RPC client or ledger database).
	ContractClose func() error
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

// Shutdown releases every client. Background workers get until ctx is done; the rest
// is closed either way and the worker timeout is returned last.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	workerErr := b.stopWorkers(ctx)

	if b.ContractClose != nil {
		if err := b.ContractClose(); err != nil {
			return err
		}
		log.Println("Successfully closing contract backend")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; nothing to do about it.
	_ = b.Logger.Sync()
	return workerErr
}

func (b *Bootstrap) stopWorkers(ctx context.Context) error {
	if b.WorkerStop == nil {
		return nil
	}

	stopped := make(chan struct{})
	go func() {
		b.WorkerStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Println("Successfully stopped background workers")
		return nil
	case <-ctx.Done():
		log.Println("Background workers still running at shutdown deadline")
		return fmt.Errorf("stop background workers: %w", ctx.Err())
	}
}
