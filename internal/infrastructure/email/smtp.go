package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendVerificationEmail(to, token string) error {
	verificationURL := fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", s.config.BaseURL, token)

	subject := "Verifiera din e-postadress"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Välkommen till KeyBuddy!</h2>
			<p>Verifiera din e-postadress genom att klicka på länken nedan:</p>
			<p><a href="%s">Verifiera e-postadress</a></p>
			<p>Eller kopiera och klistra in denna adress i din webbläsare:</p>
			<p>%s</p>
			<p>Länken är giltig i 24 timmar.</p>
			<p>Om du inte har skapat ett konto kan du bortse från detta meddelande.</p>
		</body>
		</html>
	`, verificationURL, verificationURL)

	plainBody := fmt.Sprintf(`
Välkommen till KeyBuddy!

Verifiera din e-postadress genom att besöka:
%s

Länken är giltig i 24 timmar.

Om du inte har skapat ett konto kan du bortse från detta meddelande.
	`, verificationURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/api/v1/auth/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Återställ ditt lösenord"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Begäran om lösenordsåterställning</h2>
			<p>Vi har tagit emot en begäran om att återställa ditt lösenord. Klicka på länken nedan för att välja ett nytt:</p>
			<p><a href="%s">Återställ lösenord</a></p>
			<p>Eller kopiera och klistra in denna adress i din webbläsare:</p>
			<p>%s</p>
			<p>Länken är giltig i 30 minuter.</p>
			<p>Om du inte har begärt en återställning kan du bortse från detta meddelande, ditt lösenord förblir oförändrat.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Begäran om lösenordsåterställning

Vi har tagit emot en begäran om att återställa ditt lösenord. Besök följande adress för att välja ett nytt:
%s

Länken är giltig i 30 minuter.

Om du inte har begärt en återställning kan du bortse från detta meddelande, ditt lösenord förblir oförändrat.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Ditt lösenord har ändrats"
	htmlBody := `
		<html>
		<body>
			<h2>Lösenord ändrat</h2>
			<p>Ditt lösenord har ändrats.</p>
			<p>Om du inte gjorde denna ändring, kontakta support omedelbart.</p>
		</body>
		</html>
	`

	plainBody := `
Lösenord ändrat

Ditt lösenord har ändrats.

Om du inte gjorde denna ändring, kontakta support omedelbart.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendBackupConfirmationEmail(to, artifact string) error {
	subject := "Säkerhetskopiering slutförd"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Säkerhetskopiering slutförd</h2>
			<p>En säkerhetskopia av din databas har skapats:</p>
			<p><strong>%s</strong></p>
			<p>Du kan stänga av dessa meddelanden under Inställningar.</p>
		</body>
		</html>
	`, artifact)

	plainBody := fmt.Sprintf(`
Säkerhetskopiering slutförd

En säkerhetskopia av din databas har skapats:
%s

Du kan stänga av dessa meddelanden under Inställningar.
	`, artifact)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
