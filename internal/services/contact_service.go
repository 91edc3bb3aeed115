package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"alexsimon-listings/internal/models"
	"alexsimon-listings/internal/validators"
	"alexsimon-listings/pkg/logger"
	"alexsimon-listings/pkg/mailer"
	"alexsimon-listings/pkg/metrics"
)

// subjectLabels maps the form's subject values to their French labels.
var subjectLabels = map[string]string{
	"achat":      "Achat",
	"vente":      "Vente",
	"evaluation": "Évaluation",
	"autre":      "Autre",
}

// ContactService validates contact-form submissions and relays them by
// email. When no SMTP transport is configured the submission is logged and
// still reported as a success; that degraded path is deliberate.
type ContactService struct {
	mailer     mailer.Mailer
	validator  validators.ContactValidator
	recipient  string
	configured bool
}

func NewContactService(m mailer.Mailer, validator validators.ContactValidator, recipient string, configured bool) *ContactService {
	return &ContactService{
		mailer:     m,
		validator:  validator,
		recipient:  recipient,
		configured: configured,
	}
}

// Relay sends the submission to the configured recipient with Reply-To set
// to the submitter.
func (s *ContactService) Relay(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		metrics.ContactEmailsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	subject := req.Subject
	if label, ok := subjectLabels[req.Subject]; ok {
		subject = label
	}

	msg := &mailer.Message{
		To:      s.recipient,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact Alex & Simon - %s - %s", subject, req.Name),
		Text:    composeText(req, subject),
		HTML:    composeHTML(req, subject),
	}

	if err := s.mailer.Send(msg); err != nil {
		metrics.ContactEmailsTotal.WithLabelValues("error").Inc()
		logger.GlobalLogger.Errorf("Contact relay failed: %v", err)
		return nil, fmt.Errorf("Une erreur est survenue lors de l'envoi")
	}

	if !s.configured {
		metrics.ContactEmailsTotal.WithLabelValues("logged").Inc()
		return &models.ContactResponse{
			Success: true,
			Message: "Message reçu (mode test - configurez SMTP_USERNAME et SMTP_PASSWORD pour envoyer des emails)",
		}, nil
	}

	metrics.ContactEmailsTotal.WithLabelValues("sent").Inc()
	return &models.ContactResponse{Success: true, Message: "Message envoyé avec succès"}, nil
}

func composeText(req *models.ContactRequest, subject string) string {
	phone := req.Phone
	if phone == "" {
		phone = "Non fourni"
	}
	return strings.TrimSpace(fmt.Sprintf(`Nouveau message du formulaire de contact Alex & Simon

Nom: %s
Courriel: %s
Téléphone: %s
Sujet: %s

Message:
%s`, req.Name, req.Email, phone, subject, req.Message))
}

func composeHTML(req *models.ContactRequest, subject string) string {
	phone := req.Phone
	if phone == "" {
		phone = "Non fourni"
	}
	message := strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>")
	return fmt.Sprintf(`<h2>Nouveau message du formulaire de contact Alex &amp; Simon</h2>
<ul>
<li><strong>Nom</strong>: %s</li>
<li><strong>Courriel</strong>: %s</li>
<li><strong>Téléphone</strong>: %s</li>
<li><strong>Sujet</strong>: %s</li>
</ul>
<h3>Message:</h3>
<p>%s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(phone),
		html.EscapeString(subject),
		message)
}
