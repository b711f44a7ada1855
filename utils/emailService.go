package utils

import (
	"fmt"
	"log"

	"github.com/Tej-ashwani/StudyNotion/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Generic Send Email
func SendEmail(to, toName, subject, htmlBody string) error {
	from := mail.NewEmail(config.AppConfig.SenderName, config.AppConfig.EmailSender)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper shared by all outbound mails
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #000814; padding: 30px; text-align: center; }
			.header h1 { color: #FFD60A; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #000814; line-height: 1.6; }
			.content h2 { color: #000814; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FFD60A; color: #000814; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD60A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>STUDYNOTION</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 StudyNotion. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. OTP for signup verification
func SendOTPEmail(email, otp string) {
	subject := "OTP Verification Code for StudyNotion"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #FFD60A; font-size: 40px; margin: 20px 0;">%s</h1>
		<p>The code is valid for 10 minutes. Do not share it with anyone.</p>
	`, otp)

	go SendEmail(email, "", subject, getEmailTemplate("Verify Your Email", body))
}

// 2. Enrollment confirmation, sent after the enrollment transaction commits
func SendEnrollmentEmail(email, firstName, courseName string) {
	subject := fmt.Sprintf("Successfully Enrolled into %s", courseName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have been successfully enrolled into <strong>%s</strong>.</p>
		<p>Head over to your dashboard to start learning.</p>
		<a href="#" class="btn">Go to Dashboard</a>
	`, firstName, courseName)

	go SendEmail(email, firstName, subject, getEmailTemplate("Course Enrollment Confirmation", body))
}

// 3. Payment received
func SendPaymentSuccessEmail(email, firstName string, amount float64, orderID, paymentID string) {
	subject := "Payment Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>Rs. %.2f</strong>.</p>
		<div class="info-box">
			<strong>Order ID:</strong> %s<br>
			<strong>Payment ID:</strong> %s
		</div>
	`, firstName, amount, orderID, paymentID)

	go SendEmail(email, firstName, subject, getEmailTemplate("Payment Confirmation", body))
}

// 4. Password changed
func SendPasswordUpdatedEmail(email, name string) {
	subject := "Password for your account has been updated"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The password for your StudyNotion account was just changed.</p>
		<p style="color: #DC3545; font-weight: bold;">If you did not make this change, please contact support immediately.</p>
	`, name)

	go SendEmail(email, name, subject, getEmailTemplate("Password Updated", body))
}

// 5. Password reset link
func SendResetPasswordEmail(email, resetURL string) {
	subject := "Password Reset"
	body := fmt.Sprintf(`
		<p>We received a request to reset the password for this email address.</p>
		<p>The link is valid for 1 hour.</p>
		<a href="%s" class="btn">Reset Password</a>
	`, resetURL)

	go SendEmail(email, "", subject, getEmailTemplate("Reset Your Password", body))
}

// 6. Contact form acknowledgement
func SendContactFormEmail(email, firstName, lastName, message string) {
	subject := "Your data was sent successfully"
	body := fmt.Sprintf(`
		<p>Dear %s %s,</p>
		<p>Thank you for contacting StudyNotion. We have received your message:</p>
		<div class="info-box"><em>%s</em></div>
		<p>Our team will get back to you shortly.</p>
	`, firstName, lastName, message)

	go SendEmail(email, firstName, subject, getEmailTemplate("We Received Your Message", body))
}
