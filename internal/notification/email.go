package notification

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/fuadinadhif/staysane-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier delivers booking lifecycle mail over SMTP. With no host
// configured it degrades to a logger-only notifier, which is also what the
// unit tests run against. Delivery failures are logged and swallowed: a
// committed booking transition is never rolled back because its mail
// bounced.
type EmailNotifier struct {
	dialer    *gomail.Dialer
	from      string
	logger    logger.Logger
	templates map[string]*template.Template
}

const (
	templateBookingCreated   = "booking_created"
	templatePaymentConfirmed = "payment_confirmed"
	templateBookingCanceled  = "booking_canceled"
	templateBookingExpired   = "booking_expired"
	templateProofRejected    = "proof_rejected"
)

var templateBodies = map[string]string{
	templateBookingCreated: `Hi {{.Username}},

Your booking {{.OrderCode}} for {{.RoomName}} ({{.CheckIn}} to {{.CheckOut}}) is reserved.
Total: {{printf "%.2f" .Total}}. Please complete payment before {{.ExpiresAt}} or the reservation will be released.`,
	templatePaymentConfirmed: `Hi {{.Username}},

Payment for booking {{.OrderCode}} ({{.RoomName}}) is confirmed. Enjoy your stay!`,
	templateBookingCanceled: `Hi {{.Username}},

Your booking {{.OrderCode}} for {{.RoomName}} has been canceled and the dates are open again.`,
	templateBookingExpired: `Hi {{.Username}},

Booking {{.OrderCode}} for {{.RoomName}} expired because payment was not completed in time. The dates are open again.`,
	templateProofRejected: `Hi {{.Username}},

The payment proof for booking {{.OrderCode}} ({{.RoomName}}) was rejected. Please upload a new proof before the deadline.`,
}

var templateSubjects = map[string]string{
	templateBookingCreated:   "Booking reserved — awaiting payment",
	templatePaymentConfirmed: "Payment confirmed",
	templateBookingCanceled:  "Booking canceled",
	templateBookingExpired:   "Booking expired",
	templateProofRejected:    "Payment proof rejected",
}

func NewEmailNotifier(host string, port int, username, password, from string, logger logger.Logger) (*EmailNotifier, error) {
	n := &EmailNotifier{
		from:      from,
		logger:    logger,
		templates: make(map[string]*template.Template),
	}
	for name, body := range templateBodies {
		tpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		n.templates[name] = tpl
	}

	if host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return n, nil
	}
	n.dialer = gomail.NewDialer(host, port, username, password)

	return n, nil
}

func (n *EmailNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room) {
	n.send(ctx, templateBookingCreated, user, booking, room)
}

func (n *EmailNotifier) NotifyPaymentConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room) {
	n.send(ctx, templatePaymentConfirmed, user, booking, room)
}

func (n *EmailNotifier) NotifyBookingCanceled(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room) {
	n.send(ctx, templateBookingCanceled, user, booking, room)
}

func (n *EmailNotifier) NotifyBookingExpired(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room) {
	n.send(ctx, templateBookingExpired, user, booking, room)
}

func (n *EmailNotifier) NotifyProofRejected(ctx context.Context, user *domain.User, booking *domain.Booking, room *domain.Room) {
	n.send(ctx, templateProofRejected, user, booking, room)
}

func (n *EmailNotifier) send(ctx context.Context, templateName string, user *domain.User, booking *domain.Booking, room *domain.Room) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("template", templateName),
		)
		return
	}

	data := map[string]any{
		"Username":  user.Username,
		"OrderCode": booking.OrderCode,
		"RoomName":  room.Name,
		"CheckIn":   booking.CheckIn.Format("2006-01-02"),
		"CheckOut":  booking.CheckOut.Format("2006-01-02"),
		"Total":     booking.TotalAmount,
	}
	if booking.ExpiresAt != nil {
		data["ExpiresAt"] = booking.ExpiresAt.Format("2006-01-02 15:04 MST")
	} else {
		data["ExpiresAt"] = ""
	}

	var body bytes.Buffer
	if err := n.templates[templateName].Execute(&body, data); err != nil {
		n.logger.Error("failed to render notification",
			logger.String("template", templateName),
			logger.String("error", err.Error()),
		)
		return
	}

	if n.dialer == nil {
		n.logger.Debug("notification skipped (smtp disabled)",
			logger.String("template", templateName),
			logger.String("to", user.Email),
		)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", templateSubjects[templateName])
	msg.SetBody("text/plain", body.String())

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Error("failed to send notification email",
			logger.String("template", templateName),
			logger.String("to", user.Email),
			logger.String("error", err.Error()),
		)
	}
}
