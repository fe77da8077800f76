package mail

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type PickSummary struct {
	WeekLabel           string
	StarBaker           string
	TechnicalWinner     string
	EliminatedBaker     string
	HandshakePrediction bool
	SeasonWinner        string
	FinalistA           string
	FinalistB           string
}

type ResultsSummary struct {
	WeekLabel       string
	StarBaker       string
	TechnicalWinner string
	EliminatedBaker string
	HandshakeGiven  bool
}

type ScoreRow struct {
	Player          string
	WeeklyPoints    int
	ForesightPoints int
	TotalPoints     int
}

type Mailer interface {
	SendPickConfirmation(to, name string, picks PickSummary) error
	SendCommissionerUpdate(results ResultsSummary, standings []ScoreRow) error
}

type Config struct {
	Host              string
	Port              string
	Username          string
	Password          string
	FromName          string
	FromEmail         string
	CommissionerEmail string
}

func ConfigFromEnv() Config {
	cfg := Config{
		Host:              os.Getenv("SMTP_HOST"),
		Port:              os.Getenv("SMTP_PORT"),
		Username:          os.Getenv("SMTP_USERNAME"),
		Password:          os.Getenv("SMTP_PASSWORD"),
		FromName:          os.Getenv("MAIL_FROM_NAME"),
		FromEmail:         os.Getenv("MAIL_FROM_EMAIL"),
		CommissionerEmail: os.Getenv("COMMISSIONER_EMAIL"),
	}
	if cfg.Port == "" {
		cfg.Port = "465"
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.Username
	}
	if cfg.CommissionerEmail == "" {
		cfg.CommissionerEmail = cfg.FromEmail
	}
	return cfg
}

// NewFromEnv returns a working SMTP mailer, or a no-op one that just logs
// when credentials are not configured. A missing mailer never breaks picks.
func NewFromEnv() Mailer {
	cfg := ConfigFromEnv()
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		log.Println("email credentials not configured, confirmation emails disabled")
		return &noopMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

type noopMailer struct{}

func (m *noopMailer) SendPickConfirmation(to, name string, picks PickSummary) error {
	log.Printf("email disabled, skipping pick confirmation to %s", to)
	return nil
}

func (m *noopMailer) SendCommissionerUpdate(results ResultsSummary, standings []ScoreRow) error {
	log.Println("email disabled, skipping commissioner update")
	return nil
}

type SMTPMailer struct {
	cfg Config
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (m *SMTPMailer) SendPickConfirmation(to, name string, picks PickSummary) error {
	subject := fmt.Sprintf("Bake Off Fantasy Picks Confirmation - %s", picks.WeekLabel)
	body := fmt.Sprintf(`<html><body><div style="font-family:sans-serif;padding:20px;border:1px solid #ddd;border-radius:8px;max-width:600px;">
<h2>Hi %s,</h2><p>Your fantasy picks for <strong>%s</strong> have been submitted!</p>
<h4>Weekly Picks:</h4><ul>
<li><strong>Star Baker:</strong> %s</li>
<li><strong>Technical Winner:</strong> %s</li>
<li><strong>Eliminated Baker:</strong> %s</li>
<li><strong>Handshake:</strong> %s</li>
</ul>
<h4>Season Predictions:</h4><ul>
<li><strong>Season Winner:</strong> %s</li>
<li><strong>Finalist A:</strong> %s</li>
<li><strong>Finalist B:</strong> %s</li>
</ul></div></body></html>`,
		name, picks.WeekLabel,
		picks.StarBaker, picks.TechnicalWinner, picks.EliminatedBaker,
		yesNo(picks.HandshakePrediction),
		picks.SeasonWinner, picks.FinalistA, picks.FinalistB)

	return m.send(to, subject, body)
}

func (m *SMTPMailer) SendCommissionerUpdate(results ResultsSummary, standings []ScoreRow) error {
	subject := fmt.Sprintf("Bake Off Weekly Results & Leaderboard - %s", results.WeekLabel)

	var table strings.Builder
	table.WriteString(`<table style="border-collapse:collapse;width:100%;"><tr>` +
		`<th style="border:1px solid #ddd;padding:8px;">Player</th>` +
		`<th style="border:1px solid #ddd;padding:8px;">Weekly</th>` +
		`<th style="border:1px solid #ddd;padding:8px;">Foresight</th>` +
		`<th style="border:1px solid #ddd;padding:8px;">Total</th></tr>`)
	for _, row := range standings {
		fmt.Fprintf(&table,
			`<tr><td style="border:1px solid #ddd;padding:8px;">%s</td>`+
				`<td style="border:1px solid #ddd;padding:8px;">%d</td>`+
				`<td style="border:1px solid #ddd;padding:8px;">%d</td>`+
				`<td style="border:1px solid #ddd;padding:8px;">%d</td></tr>`,
			row.Player, row.WeeklyPoints, row.ForesightPoints, row.TotalPoints)
	}
	table.WriteString("</table>")

	body := fmt.Sprintf(`<html><body><div style="font-family:sans-serif;padding:20px;border:1px solid #ddd;border-radius:8px;max-width:600px;">
<h2>Results for %s have been entered!</h2>
<h3>Summary of Results:</h3><ul>
<li><strong>Star Baker:</strong> %s</li>
<li><strong>Technical Winner:</strong> %s</li>
<li><strong>Eliminated Baker:</strong> %s</li>
<li><strong>Handshake Given:</strong> %s</li>
</ul><h3>Updated Leaderboard:</h3>%s</div></body></html>`,
		results.WeekLabel,
		results.StarBaker, results.TechnicalWinner, results.EliminatedBaker,
		yesNo(results.HandshakeGiven), table.String())

	return m.send(m.cfg.CommissionerEmail, subject, body)
}

// send speaks SMTPS (implicit TLS, port 465 by default) with plain auth and
// an HTML body.
func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	addr := m.cfg.Host + ":" + m.cfg.Port

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n"+
		"MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"utf-8\"\r\n\r\n%s",
		from, to, subject, htmlBody)

	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	return w.Close()
}
