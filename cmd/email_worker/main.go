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

	"github.com/lakshanchamidu/Blog-Platform/config"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
	"github.com/lakshanchamidu/Blog-Platform/pkg/mailer"
)

// Worker process that drains the email queue and delivers through Mailgun.
// Runs separately from the API server so slow deliveries never block requests.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if cfg.RabbitMQURL == "" {
		log.Fatal("RABBITMQ_URL is required for the email worker")
	}

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

	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	// One unacked message at a time keeps retries simple.
	if err := ch.Qos(1, 0, false); err != nil {
		log.Fatalf("failed to set qos: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("failed to consume: %v", err)
	}

	mg := &mailer.Mailgun{
		Domain: cfg.MailgunDomain,
		APIKey: cfg.MailgunAPIKey,
		Sender: cfg.MailgunSender,
	}

	logger.Infof("email worker listening on queue %q", cfg.RabbitMQEmailQueue)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-msgs:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			handle(ctx, d, mg, cfg, logger)
		}
	}
}

func handle(ctx context.Context, d amqp.Delivery, mg *mailer.Mailgun, cfg *config.Config, logger *logrus.Logger) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.Errorf("dropping malformed email job: %v", err)
		_ = d.Nack(false, false)
		return
	}

	if !cfg.MailSendEnabled {
		logger.Infof("mail sending disabled, skipping email to %s (%s)", job.To, job.Subject)
		_ = d.Ack(false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := mg.Send(sendCtx, job.To, job.Subject, job.Text, job.HTML); err != nil {
		logger.Errorf("failed to send email to %s: %v", job.To, err)
		// Requeue once via nack; poison messages get dropped on redelivery.
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	logger.Infof("sent email to %s (%s)", job.To, job.Subject)
	_ = d.Ack(false)
}
