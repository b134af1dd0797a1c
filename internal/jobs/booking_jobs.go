package jobs

import (
	"context"
	"time"
)

// MarkOverdueBookings flags confirmed or active bookings whose end date has
// passed without completion.
func (jr *JobRunner) MarkOverdueBookings() {
	jr.runWithRecovery("MarkOverdueBookings", func() {
		ctx := context.Background()

		query := `
			UPDATE bookings
			SET status = 'overdue',
			    updated_on = NOW()
			WHERE status IN ('confirmed', 'active')
			  AND end_date < $1
			RETURNING id, variation_id, end_date
		`

		rows, err := jr.db.QueryContext(ctx, query, time.Now())
		if err != nil {
			jr.log.Error("Failed to mark overdue bookings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, variationID string
			var endDate time.Time
			if err := rows.Scan(&id, &variationID, &endDate); err != nil {
				jr.log.Error("Failed to scan overdue booking", "error", err)
				continue
			}
			jr.log.Debug("Marked booking as overdue",
				"booking_id", id, "variation_id", variationID, "end_date", endDate)
			count++
		}
		if err := rows.Err(); err != nil {
			jr.log.Error("Error iterating overdue bookings", "error", err)
			return
		}

		jr.log.Info("Marked bookings as overdue", "count", count)
	})
}

// SendBookingReminders emails customers whose booking starts within the next
// 24 hours.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx := context.Background()

		query := `
			SELECT b.customer_email, b.customer_name, v.name, b.start_date
			FROM bookings b
			JOIN variations v ON v.id = b.variation_id
			WHERE b.status = 'confirmed'
			  AND b.start_date >= $1
			  AND b.start_date < $2
		`

		now := time.Now()
		rows, err := jr.db.QueryContext(ctx, query, now, now.Add(24*time.Hour))
		if err != nil {
			jr.log.Error("Failed to load upcoming bookings", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var email, name, itemName string
			var start time.Time
			if err := rows.Scan(&email, &name, &itemName, &start); err != nil {
				jr.log.Error("Failed to scan upcoming booking", "error", err)
				continue
			}
			if err := jr.notifier.SendBookingReminder(ctx, email, name, itemName, start); err != nil {
				jr.log.Error("Failed to send booking reminder", "email", email, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			jr.log.Error("Error iterating upcoming bookings", "error", err)
			return
		}

		jr.log.Info("Sent booking reminders", "count", sent)
	})
}
