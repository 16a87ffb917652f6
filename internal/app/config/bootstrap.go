package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// SchedulerStop if set is called during Shutdown to stop the
	// background sync scheduler.
	SchedulerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SchedulerStop != nil {
		b.SchedulerStop()
		log.Println("Successfully stopped sync scheduler")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closed Redis")
	}

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closed Logger")

	return nil
}
