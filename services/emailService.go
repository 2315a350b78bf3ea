package services

import (
	"fmt"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client *resend.Client
}

var emailService *EmailService

func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")

	if apiKey == "" {
		log.Println("WARNING: RESEND_API_KEY not set. Email service will not be available.")
		return
	}

	emailService = &EmailService{
		client: resend.NewClient(apiKey),
	}

	log.Println("Email service initialized with Resend")
}

func GetEmailService() *EmailService {
	return emailService
}

// SendGroupInviteEmail mails a group invite code to someone a group
// admin wants to bring in.
func (s *EmailService) SendGroupInviteEmail(toEmail, groupName, inviterName, inviteCode string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #90c590;">PrayCircle</h1>

    <h2>You're invited to %s</h2>

    <p>%s invited you to join their prayer group on PrayCircle.</p>

    <p>Open the app, choose "Join a group", and enter this code:</p>

    <div style="background-color: #f5f5f5; border: 2px solid #90c590; border-radius: 8px; padding: 20px; text-align: center; margin: 20px 0;">
        <span style="font-size: 28px; font-weight: bold; letter-spacing: 6px; font-family: monospace; color: #90c590;">%s</span>
    </div>

    <p>Blessings,<br>The PrayCircle Team</p>
</body>
</html>
`, groupName, inviterName, inviteCode)

	textBody := fmt.Sprintf(`You're invited to %s

%s invited you to join their prayer group on PrayCircle.

Open the app, choose "Join a group", and enter this code: %s

Blessings,
The PrayCircle Team
`, groupName, inviterName, inviteCode)

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_FROM_EMAIL"),
		To:      []string{toEmail},
		Subject: fmt.Sprintf("You're invited to %s on PrayCircle", groupName),
		Html:    htmlBody,
		Text:    textBody,
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		log.Printf("Failed to send group invite email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	log.Printf("Sent group invite email to %s. Email ID: %s", toEmail, sent.Id)
	return nil
}
