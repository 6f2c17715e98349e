package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/config"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
	"github.com/oksasatya/store-admin-api/pkg/mailer"
)

// order_worker consumes the order queue that checkout publishes to and mails a
// notification for every new order. Bad payloads are dropped; a failed send is
// requeued once after a delay, then dropped, so a dead mail provider cannot
// spin the same message through the queue.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-order-worker", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("failed to connect to rabbitmq: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(cfg.RabbitMQOrderQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQOrderQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("order worker consuming queue %q", cfg.RabbitMQOrderQueue)
	for {
		select {
		case <-ctx.Done():
			logger.Info("order worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			handle(ctx, logger, mg, cfg, d)
		}
	}
}

// mailSender is satisfied by mailer.Mailgun.
type mailSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// requeueDelay spaces out the single redelivery attempt.
var requeueDelay = 5 * time.Second

func handle(ctx context.Context, logger *logrus.Logger, mg mailSender, cfg *config.Config, d amqp.Delivery) {
	var job mailer.OrderJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.WithError(err).Warn("dropping malformed order job")
		_ = d.Nack(false, false)
		return
	}
	if !cfg.MailSendEnabled || cfg.OrderNotifyEmail == "" {
		_ = d.Ack(false)
		return
	}
	if err := mg.Send(ctx, cfg.OrderNotifyEmail, job.Subject(), job.Text(), ""); err != nil {
		if d.Redelivered {
			logger.WithError(err).WithField("order_id", job.OrderID).Error("notification mail failed twice, dropping")
			_ = d.Nack(false, false)
			return
		}
		logger.WithError(err).WithField("order_id", job.OrderID).Warn("notification mail failed, requeueing")
		select {
		case <-ctx.Done():
		case <-time.After(requeueDelay):
		}
		_ = d.Nack(false, true)
		return
	}
	logger.WithField("order_id", job.OrderID).Info("order notification sent")
	_ = d.Ack(false)
}
