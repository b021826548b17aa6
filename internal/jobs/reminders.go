package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/safestay/safestay-backend/internal/services"
	"github.com/safestay/safestay-backend/internal/storage"
)

// ReminderJob runs the scheduled background work: daily bill reminders and
// periodic cleanup of expired USSD sessions.
type ReminderJob struct {
	store         storage.Store
	notifications *services.NotificationService
	scheduler     *cron.Cron
}

// NewReminderJob creates the scheduled job runner
func NewReminderJob(store storage.Store, notifications *services.NotificationService) *ReminderJob {
	return &ReminderJob{
		store:         store,
		notifications: notifications,
		scheduler:     cron.New(),
	}
}

// Start registers the schedules and launches the scheduler.
func (j *ReminderJob) Start() error {
	// Daily at 9 AM
	if _, err := j.scheduler.AddFunc("0 9 * * *", j.SendBillReminders); err != nil {
		return err
	}

	// Expired sessions stay in the table until swept
	if _, err := j.scheduler.AddFunc("@every 5m", j.CleanupSessions); err != nil {
		return err
	}

	j.scheduler.Start()
	log.Println("⏰ Scheduled jobs started")
	return nil
}

// Stop halts the scheduler, waiting for running jobs to finish.
func (j *ReminderJob) Stop() {
	ctx := j.scheduler.Stop()
	<-ctx.Done()
}

// SendBillReminders texts every tenant whose bill is overdue or due within
// three days.
func (j *ReminderJob) SendBillReminders() {
	cutoff := time.Now().Add(3 * 24 * time.Hour)
	bills, err := j.store.GetUpcomingBills(cutoff)
	if err != nil {
		log.Printf("Failed to fetch upcoming bills: %v", err)
		return
	}

	sent := 0
	for _, bill := range bills {
		tenant, err := j.store.GetUser(bill.TenantID)
		if err != nil {
			log.Printf("Tenant %d not found for reminder: %v", bill.TenantID, err)
			continue
		}

		if err := j.notifications.SendBillReminder(tenant, bill); err != nil {
			log.Printf("Failed to send reminder to %s: %v", tenant.PrimaryPhoneNumber, err)
			continue
		}
		sent++
	}

	log.Printf("Sent %d bill reminders", sent)
}

// CleanupSessions sweeps expired USSD sessions from the store.
func (j *ReminderJob) CleanupSessions() {
	if err := j.store.DeleteExpiredSessions(); err != nil {
		log.Printf("Failed to clean up expired sessions: %v", err)
	}
}
