package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"viralagent/kafka"
	"viralagent/orchestrator"
	"viralagent/types"

	"github.com/joho/godotenv"
)

const (
	defaultRunTopic = "automation.run-requests"
	defaultRunAt    = "09:00"
	consumerGroupID = "viralagent-worker"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orch := orchestrator.NewFromEnv()

	// On-demand runs arrive over kafka when brokers are configured; the daily
	// schedule below runs either way.
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_RUN_TOPIC")
		if topic == "" {
			topic = defaultRunTopic
		}

		consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   topic,
			GroupID: consumerGroupID,
			Handler: &kafka.TypedMessageHandler[types.RunRequest]{
				Process: func(ctx context.Context, msg *types.RunRequest) error {
					log.Printf("run requested over kafka (requested_by=%q)", msg.RequestedBy)
					runOnce(ctx, orch)
					return nil
				},
				AlwaysMark: true,
			},
		})
		if err != nil {
			log.Fatalf("kafka consumer setup failed: %v", err)
		}
		defer consumer.Close()

		if err := consumer.Start(ctx); err != nil {
			log.Fatalf("kafka consumer start failed: %v", err)
		}
	} else {
		log.Println("KAFKA_BROKERS not set; on-demand runs disabled")
	}

	runAt := os.Getenv("RUN_AT")
	if runAt == "" {
		runAt = defaultRunAt
	}
	log.Printf("worker started; daily run scheduled at %s", runAt)

	for {
		wait, err := untilNext(runAt, time.Now())
		if err != nil {
			log.Fatalf("invalid RUN_AT %q: %v", runAt, err)
		}
		log.Printf("next scheduled run in %s", wait.Round(time.Second))

		select {
		case <-ctx.Done():
			log.Println("worker shutting down")
			return
		case <-time.After(wait):
			runOnce(ctx, orch)
		}
	}
}

// untilNext returns the duration from now until the next occurrence of the
// local wall-clock time hhmm ("15:04").
func untilNext(hhmm string, now time.Time) (time.Duration, error) {
	at, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM: %w", err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now), nil
}

func runOnce(ctx context.Context, orch *orchestrator.Orchestrator) {
	log.Println("starting automation cycle")
	summary, err := orch.Run(ctx)
	if err != nil {
		log.Printf("automation cycle failed: %v", err)
		return
	}
	log.Printf("automation cycle complete: run=%s product=%q", summary.RunID, summary.Product)
}
