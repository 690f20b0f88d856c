package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"slotwise/config"
	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
	"slotwise/utils"
)

const TypeOverridePrune = "override:prune"

// InitRetentionWorker runs the async worker in background. Its only job
// is pruning date overrides whose date passed more than the retention
// window ago; nothing reads them once the date has gone by.
func InitRetentionWorker(repo scheduleRepo.Repository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverridePrune, handleOverridePrune(repo))

	go func() {
		log.Println("[RetentionWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[RetentionWorker] failed to start worker: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register("@daily", asynq.NewTask(TypeOverridePrune, nil)); err != nil {
		log.Fatalf("[RetentionWorker] failed to register prune schedule: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[RetentionWorker] scheduler failed: %v", err)
		}
	}()
}

func handleOverridePrune(repo scheduleRepo.Repository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		logger := utils.GetLogger()

		retentionDays := config.AppConfig.OverrideRetentionDays
		if retentionDays <= 0 {
			retentionDays = 90
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)

		deleted, err := repo.DeleteOverridesBefore(ctx, cutoff)
		if err != nil {
			logger.Error("override prune failed", zap.Error(err))
			return err
		}
		logger.Info("pruned expired overrides",
			zap.Int64("deleted", deleted),
			zap.String("cutoff", cutoff.Format(models.DateLayout)))
		return nil
	}
}
