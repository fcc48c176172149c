package services_test

import (
	"testing"

	"github.com/codecraftpakistan/codecraft-site/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestNotificationText(t *testing.T) {
	text := services.NotificationText(filledForm())

	assert.Equal(t, "Name: Ayesha Khan\n"+
		"Email: ayesha@example.com\n"+
		"Contact: +92 3001234567\n"+
		"Post: Backend Engineer\n"+
		"Experience: 4 years\n"+
		"Details: Go services and Postgres\n"+
		"Resume File Name: resume.pdf", text)
}

func TestAcknowledgmentLetter(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.Company.Inbox = "codecraftpakistan@gmail.com"

	letter := services.AcknowledgmentLetter(filledForm(), cfg.Company)

	expected := `Dear Ayesha Khan,

Thank you for applying to Code Craft Pakistan for the position of Backend Engineer.

We have successfully received your application along with your resume.
Our recruitment team will carefully review your application and, if your profile matches our requirements, we will contact you for the next steps.

Please note that due to the large number of applications, only shortlisted candidates will be contacted.

If you have any questions, feel free to reply to this email.

Best regards,
Bilal Ahmad
CEO, Code Craft Pakistan
Email: codecraftpakistan@gmail.com
Website: www.codecraftpakistan.com
Location: Abdara road, peshawar, Pakistan`
	assert.Equal(t, expected, letter)
}

func TestAcknowledgmentParams(t *testing.T) {
	cfg := testConfig("http://unused")

	params := services.AcknowledgmentParams(filledForm(), cfg.Company)

	assert.Equal(t, "Ayesha Khan", params["to_name"])
	assert.Equal(t, "ayesha@example.com", params["to_email"])
	assert.Equal(t, "Backend Engineer", params["position"])
	assert.Equal(t, "Code Craft Pakistan", params["company_name"])
	assert.NotContains(t, params, "reply_to")
}
