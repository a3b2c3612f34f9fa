package notify

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/ZenKhalil/ExamProject-Barbershop-app/internal/config"
)

// Mailer delivers booking confirmations over SMTP with an attached
// calendar invite.
type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	shopName    string
	shopAddress string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:        cfg.SMTPUsername,
		shopName:    cfg.ShopName,
		shopAddress: cfg.ShopAddress,
	}
}

func (m *Mailer) Send(ev BookingConfirmed) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", ev.CustomerEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Booking confirmed at %s - %s %s", m.shopName, ev.Date, ev.Start))
	msg.SetBody("text/plain", m.body(ev))

	ics := m.invite(ev)
	msg.Attach("appointment.ics", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.WriteString(w, ics)
		return err
	}))

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) body(ev BookingConfirmed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", ev.CustomerName)
	fmt.Fprintf(&b, "Your appointment with %s is confirmed.\n\n", ev.BarberName)
	fmt.Fprintf(&b, "Date:     %s\n", ev.Date)
	fmt.Fprintf(&b, "Time:     %s - %s\n", ev.Start, ev.End)
	fmt.Fprintf(&b, "Services: %s\n", ev.ServiceNames)
	fmt.Fprintf(&b, "Where:    %s, %s\n\n", m.shopName, m.shopAddress)
	fmt.Fprintf(&b, "Booking reference: %s\n", ev.Reference)
	return b.String()
}

// invite renders a minimal VEVENT. Times are floating local times on
// purpose; the shop has a single fixed timezone and the wire format
// carries no offsets.
func (m *Mailer) invite(ev BookingConfirmed) string {
	stamp := func(t string) string {
		return strings.ReplaceAll(strings.ReplaceAll(t, "-", ""), ":", "")
	}
	day := stamp(ev.Date.String())

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//" + m.shopName + "//Booking//EN\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s\r\n", ev.Reference)
	fmt.Fprintf(&b, "DTSTART:%sT%s00\r\n", day, stamp(ev.Start.String()))
	fmt.Fprintf(&b, "DTEND:%sT%s00\r\n", day, stamp(ev.End.String()))
	fmt.Fprintf(&b, "SUMMARY:%s - %s\r\n", m.shopName, ev.ServiceNames)
	fmt.Fprintf(&b, "LOCATION:%s\r\n", m.shopAddress)
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

var _ Sink = (*Mailer)(nil)
