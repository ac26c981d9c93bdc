// Package natsutil publishes nodeflow CloudEvents to NATS JetStream.
package natsutil

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/opsfabric/nodeflow/pkg/models"
)

const (
	eventSource           = "nodeflow/provisioner"
	nodeLifecycleType     = "com.opsfabric.nodeflow.node.lifecycle"
	nodeLifecycleSubject  = "events.node.lifecycle"
	defaultSubjectPattern = "events.node.*"
)

// EventPublisher provides methods for publishing CloudEvents to NATS
// JetStream.
type EventPublisher struct {
	js     jetstream.JetStream
	stream string
}

// NewEventPublisher creates an EventPublisher for the specified stream.
func NewEventPublisher(js jetstream.JetStream, streamName string) *EventPublisher {
	return &EventPublisher{
		js:     js,
		stream: streamName,
	}
}

// PublishNodeLifecycleEvent publishes a subscription lifecycle transition to
// the events stream.
func (p *EventPublisher) PublishNodeLifecycleEvent(ctx context.Context, data models.NodeLifecycleEventData) error {
	eventBytes, subject, err := marshalNodeLifecycleEvent(data)
	if err != nil {
		return err
	}

	if _, err := p.js.Publish(ctx, subject, eventBytes); err != nil {
		return fmt.Errorf("failed to publish node lifecycle event: %w", err)
	}

	return nil
}

// marshalNodeLifecycleEvent wraps the data in a CloudEvents envelope.
func marshalNodeLifecycleEvent(data models.NodeLifecycleEventData) ([]byte, string, error) {
	event := models.CloudEvent{
		SpecVersion:     "1.0",
		ID:              uuid.New().String(),
		Source:          eventSource,
		Type:            nodeLifecycleType,
		DataContentType: "application/json",
		Subject:         nodeLifecycleSubject,
		Time:            &data.Timestamp,
		Data:            data,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal node lifecycle event: %w", err)
	}

	return eventBytes, event.Subject, nil
}

// ConnectWithEventPublisher creates a NATS connection with JetStream,
// ensures the stream exists, and returns an EventPublisher.
func ConnectWithEventPublisher(ctx context.Context, natsURL, streamName string, opts ...nats.Option) (*EventPublisher, *nats.Conn, error) {
	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	_, err = js.Stream(ctx, streamName)
	if err != nil {
		streamConfig := jetstream.StreamConfig{
			Name:     streamName,
			Subjects: []string{defaultSubjectPattern},
		}

		_, err = js.CreateOrUpdateStream(ctx, streamConfig)
		if err != nil {
			nc.Close()
			return nil, nil, fmt.Errorf("failed to create or get stream %s: %w", streamName, err)
		}
	}

	return NewEventPublisher(js, streamName), nc, nil
}
