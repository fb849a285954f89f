package notify

import "fmt"

// Mail copy per event type. Kept as plain fmt templates; the layout is
// simple enough that html/template would be overkill here.

func render(ev Event) (subject, body string) {
	switch ev.Type {
	case EventCreated:
		subject = "We received your booking request"
		body = fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;">
			<h2>Booking request received</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>We received your request for <strong>%s</strong> with <strong>%s</strong>.</p>
			<ul>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
			</ul>
			<p>You will get another email once it is confirmed.</p>
		</div>`, ev.CustomerName, ev.ServiceName, ev.WorkerName, ev.Date, ev.StartTime)

	case EventConfirmed:
		subject = "Your appointment is confirmed"
		body = fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;">
			<h2>Appointment confirmed</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>Your appointment for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> is confirmed.</p>
			<p>If you need to cancel or reschedule, please sign in to the app.</p>
		</div>`, ev.CustomerName, ev.ServiceName, ev.Date, ev.StartTime)

	case EventUpdated:
		subject = "Your appointment was updated"
		body = fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;">
			<h2>Appointment updated</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>Your appointment for <strong>%s</strong> now takes place on <strong>%s</strong> at <strong>%s</strong>.</p>
		</div>`, ev.CustomerName, ev.ServiceName, ev.Date, ev.StartTime)

	case EventCancelled:
		subject = "Your appointment was cancelled"
		body = fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;">
			<h2>Appointment cancelled</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>Your appointment for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> has been cancelled.</p>
			<p>We hope to see you again soon.</p>
		</div>`, ev.CustomerName, ev.ServiceName, ev.Date, ev.StartTime)

	case EventCompleted:
		subject = "Thank you for your visit"
		body = fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;">
			<h2>Thank you!</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>We hope you enjoyed your <strong>%s</strong>. Your appointment has been marked as completed.</p>
			<p>We would love to see you again.</p>
		</div>`, ev.CustomerName, ev.ServiceName)

	case EventReminder:
		subject = "Reminder: your appointment is tomorrow"
		body = fmt.Sprintf(`
		<div style="max-width:600px;margin:0 auto;padding:20px;font-family:Arial,sans-serif;color:#333;">
			<h2>See you soon</h2>
			<p>Hi <strong>%s</strong>,</p>
			<p>This is a reminder for your appointment:</p>
			<ul>
				<li><strong>Service:</strong> %s</li>
				<li><strong>With:</strong> %s</li>
				<li><strong>Date:</strong> %s</li>
				<li><strong>Time:</strong> %s</li>
			</ul>
			<p>If you need to reschedule, please contact us as soon as possible.</p>
		</div>`, ev.CustomerName, ev.ServiceName, ev.WorkerName, ev.Date, ev.StartTime)

	default:
		subject = "Appointment update"
		body = fmt.Sprintf("<p>Hi %s, there is an update on your appointment %s.</p>",
			ev.CustomerName, ev.Reference)
	}

	return subject, body
}
