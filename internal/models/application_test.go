package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationForm_Defaults(t *testing.T) {
	form := NewApplicationForm()

	assert.Equal(t, DefaultCountryCode, form.CountryCode)
	assert.Empty(t, form.Name)
	assert.Equal(t, NoFileChosen, form.ResumeLabel())
}

func TestApplicationForm_Reset(t *testing.T) {
	form := &ApplicationForm{
		Name:           "Ayesha Khan",
		ContactNumber:  "3001234567",
		CountryCode:    "+44",
		Email:          "ayesha@example.com",
		Role:           "Backend Engineer",
		Experience:     "4",
		Details:        "Go and Postgres",
		ResumeFileName: "resume.pdf",
	}

	form.Reset()

	assert.Equal(t, *NewApplicationForm(), *form)
}

func TestApplicationForm_Phone(t *testing.T) {
	form := &ApplicationForm{CountryCode: "+92", ContactNumber: "300 1234567"}
	assert.Equal(t, "+92 300 1234567", form.Phone())
}

func TestIsResumeFileName(t *testing.T) {
	assert.True(t, IsResumeFileName("resume.pdf"))
	assert.True(t, IsResumeFileName("CV.DOCX"))
	assert.True(t, IsResumeFileName("my.cv.doc"))
	assert.False(t, IsResumeFileName("resume.exe"))
	assert.False(t, IsResumeFileName("resume"))
}

func TestLookups(t *testing.T) {
	assert.True(t, IsCountryCode("+971"))
	assert.False(t, IsCountryCode("+7"))
	assert.True(t, IsJobRole("UI/UX Designer"))
	assert.False(t, IsJobRole("Astronaut"))
}
