package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"counselling-module/config"
	"counselling-module/logger"

	"github.com/segmentio/kafka-go"
)

var (
	consumer        *kafka.Reader
	consumerMutex   sync.Mutex
	consumerRunning bool
	consumerCancel  context.CancelFunc
)

// StartEmailConsumer consumes email.send events from the emails topic and
// delivers them via SMTP. Runs until StopConsumer is called.
func StartEmailConsumer() {
	consumerMutex.Lock()
	defer consumerMutex.Unlock()

	if config.AppConfig.KafkaBrokers == "" {
		logger.Info("Kafka is disabled, email consumer not started")
		return
	}
	if consumerRunning {
		return
	}

	brokers := strings.Split(config.AppConfig.KafkaBrokers, ",")
	consumer = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     "counselling-email-sender",
		Topic:       topicFor(TopicEmails),
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		StartOffset: kafka.LastOffset,
	})

	ctx, cancel := context.WithCancel(context.Background())
	consumerCancel = cancel
	consumerRunning = true

	go consumeEmails(ctx)
	logger.Info("Email consumer started")
}

func consumeEmails(ctx context.Context) {
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Error reading email event: %v", err)
			time.Sleep(2 * time.Second)
			continue
		}

		var evt struct {
			Event      string `json:"event"`
			Recipient  string `json:"recipient"`
			Subject    string `json:"subject"`
			Body       string `json:"body"`
			Attachment string `json:"attachment"`
		}
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			logger.Warn("Skipping malformed email event: %v", err)
			continue
		}
		if evt.Event != "email.send" {
			continue
		}

		var sendErr error
		if evt.Attachment != "" {
			sendErr = SendEmailDirect(evt.Recipient, evt.Subject, evt.Body, evt.Attachment)
		} else {
			sendErr = SendEmailDirect(evt.Recipient, evt.Subject, evt.Body)
		}
		if sendErr != nil {
			logger.Error("Failed to deliver queued email to %s: %v", evt.Recipient, sendErr)
		}
	}
}

// StopConsumer stops the email consumer and closes the reader.
func StopConsumer() error {
	consumerMutex.Lock()
	defer consumerMutex.Unlock()

	if !consumerRunning {
		return nil
	}
	consumerRunning = false
	consumerCancel()
	return consumer.Close()
}
