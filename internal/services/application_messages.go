package services

import (
	"fmt"
	"strings"

	"github.com/codecraftpakistan/codecraft-site/config"
	"github.com/codecraftpakistan/codecraft-site/internal/models"
)

// Relay template kinds, used as log and metric labels
const (
	KindNotification   = "notification"
	KindAcknowledgment = "acknowledgment"
)

// NotificationSubject is the subject line of the message sent to the company inbox
func NotificationSubject(role string) string {
	return "Job Application: " + role
}

// NotificationText is the body of the message sent to the company inbox
func NotificationText(form *models.ApplicationForm) string {
	lines := []string{
		"Name: " + form.Name,
		"Email: " + form.Email,
		"Contact: " + form.Phone(),
		"Post: " + form.Role,
		"Experience: " + form.Experience + " years",
		"Details: " + form.Details,
		"Resume File Name: " + form.ResumeLabel(),
	}
	return strings.Join(lines, "\n")
}

// NotificationParams are the template parameters of the inbox notification
func NotificationParams(form *models.ApplicationForm, company config.CompanyConfig) map[string]string {
	return map[string]string{
		"from_name":  form.Name,
		"from_email": form.Email,
		"subject":    NotificationSubject(form.Role),
		"message":    NotificationText(form),
		"to_email":   company.Inbox,
		"reply_to":   form.Email,
	}
}

// AcknowledgmentLetter is the confirmation letter sent back to the applicant
func AcknowledgmentLetter(form *models.ApplicationForm, company config.CompanyConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", form.Name)
	fmt.Fprintf(&b, "Thank you for applying to %s for the position of %s.\n\n", company.Name, form.Role)
	b.WriteString("We have successfully received your application along with your resume.\n")
	b.WriteString("Our recruitment team will carefully review your application and, if your profile matches our requirements, we will contact you for the next steps.\n\n")
	b.WriteString("Please note that due to the large number of applications, only shortlisted candidates will be contacted.\n\n")
	b.WriteString("If you have any questions, feel free to reply to this email.\n\n")
	b.WriteString("Best regards,\n")
	fmt.Fprintf(&b, "%s\n", company.Signatory)
	fmt.Fprintf(&b, "%s, %s\n", company.SignatoryTitle, company.Name)
	fmt.Fprintf(&b, "Email: %s\n", company.Inbox)
	fmt.Fprintf(&b, "Website: %s\n", company.Website)
	fmt.Fprintf(&b, "Location: %s", company.Location)
	return b.String()
}

// AcknowledgmentParams are the template parameters of the applicant confirmation
func AcknowledgmentParams(form *models.ApplicationForm, company config.CompanyConfig) map[string]string {
	return map[string]string{
		"to_name":       form.Name,
		"to_email":      form.Email,
		"position":      form.Role,
		"company_name":  company.Name,
		"reply_message": AcknowledgmentLetter(form, company),
	}
}
