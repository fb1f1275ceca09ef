package events

import (
	"context"
	"sync"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp091.Channel the publisher needs.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	mu      sync.Mutex
	Channel publishChannel
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQPublisher opens a channel on conn and declares the durable
// active class queue.
func NewRabbitMQPublisher(conn *amqp091.Connection, logger *zap.Logger, queue string) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return newRabbitMQPublisher(channel, logger, queue), nil
}

func newRabbitMQPublisher(channel publishChannel, logger *zap.Logger, queue string) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) PublishActiveClassChanged(ctx context.Context, event *models.ActiveClassEvent) error {
	requestID := utils.GetRequestID(ctx)

	p.Log.Info("rabbitMQPublisher.PublishActiveClassChanged called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBatchKey, event.Batch),
	)

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.PublishActiveClassChanged error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"batch": event.Batch,
		},
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("rabbitMQPublisher.PublishActiveClassChanged error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.PublishActiveClassChanged succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingBatchKey, event.Batch),
	)
	return nil
}
