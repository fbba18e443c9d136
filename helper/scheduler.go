package helper

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var paymentScheduler gocron.Scheduler

// StartPaymentScheduler runs the stale-pending reconciliation sweep every
// 15 minutes, picking up tickets whose gateway notification never arrived.
func StartPaymentScheduler(bridge *PaymentBridge) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	paymentScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(func() {
			bridge.ReconcileStale(context.Background(), 30*time.Minute)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("payment reconciliation scheduler started")
}

func StopPaymentScheduler() {
	if paymentScheduler != nil {
		_ = paymentScheduler.Shutdown()
	}
}
