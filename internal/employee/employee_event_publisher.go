package employee

import (
	"context"

	"go-employee/internal/events"
	"go-employee/internal/messaging/kafka/producer"
)

//go:generate mockgen -source=employee_event_publisher.go -destination=mock/employee_event_publisher_mock.go -package=mock
type EventPublisher interface {
	Publish(ctx context.Context, event events.EmployeeEvent) error
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no broker is configured.
func NewNoopEventPublisher() EventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) Publish(context.Context, events.EmployeeEvent) error {
	return nil
}

type kafkaEventPublisher struct {
	writer producer.MessageWriter
}

func NewKafkaEventPublisher(writer producer.MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, event events.EmployeeEvent) error {
	return producer.PublishJSON(
		ctx,
		p.writer,
		events.EmployeeLifecycleTopic,
		event.EmployeeID,
		event.EventType,
		event,
	)
}
