package queue

import (
	"context"

	"go-event-registration/internal/model"
)

type Delivery struct {
	Data *model.RegistrationNotification
	Ack  func()
	Nack func(requeue bool)
}

// NotificationQueue decouples notification dispatch from the registration
// write path: the service publishes after a successful commit, the worker
// consumes. Publish failures are the caller's to log; they never roll back a
// registration.
type NotificationQueue interface {
	PublishNotification(ctx context.Context, notification *model.RegistrationNotification) error
	SubscribeNotifications(ctx context.Context) (<-chan Delivery, error)
}

// NotificationQueueImpl is the in-process channel-backed queue, suitable for
// single-instance deployments and tests.
type NotificationQueueImpl struct {
	ch chan *model.RegistrationNotification
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *model.RegistrationNotification, bufferSize),
	}
}

func (q *NotificationQueueImpl) PublishNotification(ctx context.Context, notification *model.RegistrationNotification) error {
	select {
	case q.ch <- notification:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *NotificationQueueImpl) SubscribeNotifications(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: notification,
					Ack:  func() { /* nothing to settle for the in-memory queue */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- notification
						}
					},
				}
			}
		}
	}()

	return out, nil
}
