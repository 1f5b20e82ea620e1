package worker

import (
	"context"

	"go-event-registration/internal/notification"
	"go-event-registration/internal/queue"
	"go-event-registration/pkg/logger"
	"go-event-registration/pkg/metrics"

	"go.uber.org/zap"
)

// NotificationWorker drains the notification queue and fires the two mails
// for every successful registration. Delivery is best effort: a failed send
// is logged and counted, never retried blindly, because re-running a job
// would double-send whichever half already succeeded.
type NotificationWorker interface {
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	notifier notification.NotificationService
	queue    queue.NotificationQueue
}

func NewNotificationWorker(notifier notification.NotificationService, notificationQueue queue.NotificationQueue) NotificationWorker {
	return &NotificationWorkerImpl{
		notifier: notifier,
		queue:    notificationQueue,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeNotifications(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			n := msg.Data

			if err := w.notifier.SendConfirmation(ctx, n.Entry.Email, n.Entry.FullName, &n.Event); err != nil {
				log.Warn("confirmation dispatch failed",
					zap.Int("registration_id", n.Entry.ID),
					zap.Error(err),
				)
				metrics.NotificationSends.WithLabelValues("confirmation", "failure").Inc()
			} else {
				metrics.NotificationSends.WithLabelValues("confirmation", "success").Inc()
			}

			if err := w.notifier.SendAdminNotification(ctx, &n.Entry, &n.Event); err != nil {
				log.Warn("admin notification dispatch failed",
					zap.Int("registration_id", n.Entry.ID),
					zap.Error(err),
				)
				metrics.NotificationSends.WithLabelValues("admin", "failure").Inc()
			} else {
				metrics.NotificationSends.WithLabelValues("admin", "success").Inc()
			}

			msg.Ack()
		}
	}()

	return nil
}
