package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfig() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends an HTML email over plain SMTP
func SendEmail(to, subject, body string) error {
	cfg := emailConfig()

	message := fmt.Sprintf("Subject: %s\r\n"+
		"To: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", subject, to, body)

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	if err := smtp.SendMail(addr, auth, cfg.Username, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOTP mails a verification OTP to a customer
func SendOTP(to, otp string) error {
	cfg := emailConfig()

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your GemNest Verification Code")

	body := fmt.Sprintf(`
		<h2>Welcome to GemNest!</h2>
		<p>Please use the following code to verify your email address:</p>
		<h1 style="color: #B8860B; font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This code will expire in 10 minutes.</p>
		<p>If you didn't request this code, please ignore this email.</p>
	`, otp)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendOrderConfirmation mails a short confirmation after payment capture
func SendOrderConfirmation(to string, orderID uint, total float64) error {
	subject := "Your GemNest order is confirmed"
	body := fmt.Sprintf(`
		<h2>Thank you for shopping with GemNest!</h2>
		<p>Your order <b>#%d</b> of &#8377;%.2f has been placed and payment received.</p>
		<p>We'll let you know as soon as it ships.</p>
	`, orderID, total)
	return SendEmail(to, subject, body)
}
