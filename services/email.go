package services

import (
	"fmt"
	"log"
	"time"

	"counselling-module/models"
)

// SendEmail publishes an email event to Kafka for async processing.
// The email is NOT sent directly - the Kafka consumer handles delivery.
func SendEmail(to, subject, body string, attachment ...string) error {
	log.Printf("Publishing email event to Kafka. Recipient: %s, Subject: %s", to, subject)

	emailPayload := map[string]interface{}{
		"event":     "email.send",
		"recipient": to,
		"subject":   subject,
		"body":      body,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if len(attachment) > 0 {
		emailPayload["attachment"] = attachment[0]
	}

	if err := Publish(topicFor(TopicEmails), fmt.Sprintf("email-%s", to), emailPayload); err != nil {
		log.Printf("Failed to publish email event to Kafka: %v", err)
		return fmt.Errorf("failed to queue email: %w", err)
	}

	log.Printf("Email event queued to Kafka: %s", to)
	return nil
}

// SendConsultationConfirmationEmail queues the confirmation sent after a
// consultation request is recorded.
func SendConsultationConfirmationEmail(req models.ConsultationRequest) error {
	preferred := "We will reach out shortly to agree a time."
	if req.PreferredTime != "" {
		preferred = fmt.Sprintf("Preferred time noted: <strong>%s</strong>", req.PreferredTime)
	}

	emailBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2196F3; color: white; padding: 20px; text-align: center; border-radius: 5px; }
        .content { background-color: #f9f9f9; padding: 20px; margin-top: 20px; border-radius: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Consultation Request Received</h2></div>
        <div class="content">
            <p>Dear <strong>%s</strong>,</p>
            <p>Thank you for reaching out. Your consultation request has been recorded and a counsellor will contact you on <strong>%s</strong>.</p>
            <p>%s</p>
            <p>Best regards,<br/>Margdarshan Counselling Team</p>
        </div>
    </div>
</body>
</html>
	`, req.Name, req.Mobile, preferred)

	subject := fmt.Sprintf("We received your consultation request, %s", req.Name)

	return SendEmail(req.Email, subject, emailBody)
}

// SendPaymentReceiptEmail queues the payment receipt email with the PDF
// receipt attached.
func SendPaymentReceiptEmail(name, email string, plan models.PricingPlan, orderID, receiptPath string) error {
	emailBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; border-radius: 5px; }
        .content { background-color: #f9f9f9; padding: 20px; margin-top: 20px; border-radius: 5px; }
        .order-info { background-color: #e8f5e9; padding: 15px; margin: 15px 0; border-left: 4px solid #4CAF50; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>Payment Confirmed</h2></div>
        <div class="content">
            <p>Dear <strong>%s</strong>,</p>
            <p>Your payment has been verified. Welcome aboard!</p>
            <div class="order-info">
                <p><strong>Plan:</strong> %s</p>
                <p><strong>Amount:</strong> &#8377;%d</p>
                <p><strong>Order ID:</strong> %s</p>
            </div>
            <p>Your receipt is attached. A counsellor will contact you within 24 hours to schedule your first session.</p>
            <p>Best regards,<br/>Margdarshan Counselling Team</p>
        </div>
    </div>
</body>
</html>
	`, name, plan.Title, plan.Price, orderID)

	subject := fmt.Sprintf("Payment confirmed - %s plan", plan.Title)

	if receiptPath != "" {
		return SendEmail(email, subject, emailBody, receiptPath)
	}
	return SendEmail(email, subject, emailBody)
}
