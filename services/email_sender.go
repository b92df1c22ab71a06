package services

import (
	"fmt"
	"log"
	"strconv"

	"counselling-module/config"

	"gopkg.in/gomail.v2"
)

// SendEmailDirect sends email directly via SMTP.
// Called by the Kafka consumer after receiving an email.send event.
func SendEmailDirect(to, subject, body string, attachment ...string) error {
	log.Printf("Sending email via SMTP - Recipient: %s", to)

	m := gomail.NewMessage()

	from := config.AppConfig.EmailFrom
	if from == "" {
		from = config.AppConfig.SMTPUser
	}
	if from == "" {
		log.Printf("Email configuration error: sender not configured")
		return fmt.Errorf("email sender not configured (set EMAIL_FROM or SMTP_USER)")
	}

	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if len(attachment) > 0 {
		m.Attach(attachment[0])
	}

	host := config.AppConfig.SMTPHost
	port := 587
	if p := config.AppConfig.SMTPPort; p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	smtpUser := config.AppConfig.SMTPUser
	smtpPass := config.AppConfig.SMTPPass
	if smtpUser == "" || smtpPass == "" {
		log.Printf("Email configuration error: SMTP credentials not configured")
		return fmt.Errorf("smtp credentials not configured (set SMTP_USER and SMTP_PASS)")
	}

	d := gomail.NewDialer(host, port, smtpUser, smtpPass)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email successfully sent to: %s", to)
	return nil
}
