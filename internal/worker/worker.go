package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/segmentio/kafka-go"

	"storefront/internal/config"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/worker/processors"
)

// MessageReader is the subset of *kafka.Reader the worker uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	reader    MessageReader
	processor *processors.EventProcessor
	scheduler *cron.Cron

	// syncMu keeps scheduled and requested syncs from overlapping.
	syncMu sync.Mutex
}

func New(cfg *config.Config, logger *logger.Logger, processor *processors.EventProcessor) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		GroupID:        "storefront-worker",
		Topic:          cfg.SyncRequestTopic,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})
	return NewWithReader(cfg, logger, processor, reader)
}

// NewWithReader builds a worker around an existing reader.
func NewWithReader(cfg *config.Config, logger *logger.Logger, processor *processors.EventProcessor, reader MessageReader) *Worker {
	return &Worker{
		config:    cfg,
		logger:    logger,
		reader:    reader,
		processor: processor,
		// A tick that lands while the previous scheduled sync runs is dropped.
		scheduler: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

// Start schedules periodic syncs and consumes sync requests until ctx is
// cancelled.
func (w *Worker) Start(ctx context.Context) error {
	if w.config.SyncSchedule != "" {
		_, err := w.scheduler.AddFunc(w.config.SyncSchedule, func() {
			w.handle(ctx, events.Event{ID: "scheduled", Type: events.TypeSyncRequested, Source: "cron"})
		})
		if err != nil {
			return fmt.Errorf("invalid sync schedule %q: %w", w.config.SyncSchedule, err)
		}
		w.scheduler.Start()
		w.logger.Info("Scheduled catalog sync: %s", w.config.SyncSchedule)
	}

	w.logger.Info("Worker started, listening for sync requests on %s...", w.config.SyncRequestTopic)

	for {
		readCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		message, err := w.reader.ReadMessage(readCtx)
		cancel()

		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			if !errors.Is(err, context.DeadlineExceeded) {
				w.logger.Error("Failed to read message: %v", err)
			}
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		event, err := events.Decode(message)
		if err != nil {
			w.logger.Error("%v", err)
			continue
		}

		w.handle(ctx, event)
	}
}

func (w *Worker) handle(ctx context.Context, event events.Event) {
	w.syncMu.Lock()
	defer w.syncMu.Unlock()

	if err := w.processor.Process(ctx, event); err != nil {
		w.logger.Error("Failed to process event: %v", err)
		return
	}
	w.logger.Debug("Event processed successfully")
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	<-w.scheduler.Stop().Done()
	w.reader.Close()
}
