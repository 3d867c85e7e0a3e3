package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/horizonfin/banking/pkg/rail"
)

// SQSEventQueue implements the EventQueue interface using AWS SQS.
type SQSEventQueue struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSEventQueue creates a new SQSEventQueue.
func NewSQSEventQueue(client *sqs.Client, queueURL string) *SQSEventQueue {
	return &SQSEventQueue{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ EventQueue = (*SQSEventQueue)(nil)

// EnqueueWebhookEvent sends the event to an SQS queue for later processing.
func (q *SQSEventQueue) EnqueueWebhookEvent(ctx context.Context, event *rail.WebhookEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event for SQS: %w", err)
	}

	_, err = q.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
