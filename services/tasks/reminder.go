package tasks

import (
	"context"
	"encoding/json"
	"time"

	"roomly/config"
	"roomly/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds a reminder task scheduled to process at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderClient enqueues booking reminders onto the asynq queue.
type ReminderClient struct {
	client *asynq.Client
}

func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder to fire the configured lead time
// before the meeting start. Meetings starting sooner than the lead time get
// no reminder.
func (c *ReminderClient) ScheduleReminder(ctx context.Context, booking *models.Booking, startAt time.Time) error {
	fireAt := startAt.Add(-time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:  booking.ID,
		Room:       booking.Room,
		Date:       booking.Date,
		Time:       booking.Time,
		EmployeeID: booking.BookedBy,
		Purpose:    booking.Purpose,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = c.client.EnqueueContext(ctx, task, opts...)
	return err
}
