// Package queue adapts the NSQ producer to the payment domain's publisher
// interface.
package queue

import (
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/internal/pkg/nsq"
)

// FeePublisher publishes fee transfer tasks to the configured NSQ topic.
type FeePublisher struct {
	producer *nsq.Producer
	topic    string
}

// NewFeePublisher creates a new fee task publisher
func NewFeePublisher(producer *nsq.Producer, topic string) *FeePublisher {
	return &FeePublisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishFeeTransfer enqueues one fee forwarding task.
func (p *FeePublisher) PublishFeeTransfer(task *models.FeeTransferTask) error {
	return p.producer.Publish(p.topic, task)
}
