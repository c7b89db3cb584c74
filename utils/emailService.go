package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"pronocoach/config"
)

// SendEmail delivers one HTML email over SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	cfg := config.AppConfig

	from := cfg.EmailSender
	password := cfg.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: PronoCoach <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.content h2 { color: #1D3557; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #E63946; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.code-box { font-size: 28px; letter-spacing: 8px; font-weight: bold; background: #F1FAEE; padding: 15px; border-radius: 4px; text-align: center; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>PRONOCOACH</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 PronoCoach. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendVerificationCodeEmail mails the 6-digit registration code.
func SendVerificationCodeEmail(email, firstname, code string) error {
	subject := "Verify your PronoCoach account"
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>Welcome to <strong>PronoCoach</strong>! Use the code below to finish creating your account:</p>
		<div class="code-box">%s</div>
		<p>The code expires in 10 minutes. If you did not sign up, you can ignore this email.</p>
	`, firstname, code)

	return SendEmail([]string{email}, subject, getEmailTemplate("Confirm your email", body))
}

// SendPasswordResetEmail mails the password reset link.
func SendPasswordResetEmail(email, firstname, resetURL string) error {
	subject := "Reset your PronoCoach password"
	body := fmt.Sprintf(`
		<p>Hello %s,</p>
		<p>We received a request to reset your password. Click the button below to set a new one:</p>
		<a href="%s" class="btn">Reset Password</a>
		<p>This link will expire in 1 hour. If you didn't request this, please ignore this email.</p>
	`, firstname, resetURL)

	return SendEmail([]string{email}, subject, getEmailTemplate("Password reset requested", body))
}
