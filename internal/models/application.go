package models

import (
	"path/filepath"
	"strings"
)

// DefaultCountryCode is preselected on a fresh form
const DefaultCountryCode = "+92"

// NoFileChosen stands in for the resume file name when none was selected
const NoFileChosen = "No file chosen"

// CountryCode is one entry of the dialing-code selector
type CountryCode struct {
	Code    string `json:"code"`
	Flag    string `json:"flag"`
	Country string `json:"country"`
}

// CountryCodes lists the dialing codes offered by the form, in display order.
// +1 appears twice (US and Canada).
var CountryCodes = []CountryCode{
	{Code: "+92", Flag: "🇵🇰", Country: "Pakistan"},
	{Code: "+1", Flag: "🇺🇸", Country: "United States"},
	{Code: "+44", Flag: "🇬🇧", Country: "United Kingdom"},
	{Code: "+971", Flag: "🇦🇪", Country: "United Arab Emirates"},
	{Code: "+91", Flag: "🇮🇳", Country: "India"},
	{Code: "+61", Flag: "🇦🇺", Country: "Australia"},
	{Code: "+1", Flag: "🇨🇦", Country: "Canada"},
	{Code: "+49", Flag: "🇩🇪", Country: "Germany"},
}

// JobRoles lists the open positions
var JobRoles = []string{
	"Flutter Developer",
	"Full Stack Developer",
	"Senior React Developer",
	"Backend Engineer",
	"UI/UX Designer",
}

// ResumeExtensions are the file types the resume picker accepts
var ResumeExtensions = []string{".pdf", ".doc", ".docx"}

// IsCountryCode reports whether code is offered by the form
func IsCountryCode(code string) bool {
	for _, c := range CountryCodes {
		if c.Code == code {
			return true
		}
	}
	return false
}

// IsJobRole reports whether role is an open position
func IsJobRole(role string) bool {
	for _, r := range JobRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsResumeFileName reports whether name has an accepted resume extension
func IsResumeFileName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range ResumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ApplicationForm is the applicant's input for one careers form instance
type ApplicationForm struct {
	Name           string `json:"name" form:"name" binding:"required"`
	ContactNumber  string `json:"contact" form:"contact" binding:"required"`
	CountryCode    string `json:"countryCode" form:"countryCode" binding:"required,countrycode"`
	Email          string `json:"email" form:"email" binding:"required,email"`
	Role           string `json:"role" form:"role" binding:"required,jobrole"`
	Experience     string `json:"experience" form:"experience" binding:"omitempty,number"`
	Details        string `json:"details" form:"details"`
	ResumeFileName string `json:"resumeFileName" form:"resumeFileName" binding:"omitempty,resumefile"`
	FormToken      string `json:"formToken,omitempty" form:"formToken"`
	RecaptchaToken string `json:"recaptchaToken,omitempty" form:"g-recaptcha-response"`
}

// NewApplicationForm returns a form holding its initial defaults
func NewApplicationForm() *ApplicationForm {
	return &ApplicationForm{CountryCode: DefaultCountryCode}
}

// Reset restores the defaults and forgets the recorded file name
func (f *ApplicationForm) Reset() {
	*f = ApplicationForm{CountryCode: DefaultCountryCode}
}

// Phone is the country code followed by the number
func (f *ApplicationForm) Phone() string {
	return f.CountryCode + " " + f.ContactNumber
}

// ResumeLabel is the recorded file name or the no-file placeholder
func (f *ApplicationForm) ResumeLabel() string {
	if strings.TrimSpace(f.ResumeFileName) == "" {
		return NoFileChosen
	}
	return f.ResumeFileName
}

// SubmitApplicationResponse is the outcome shown to the applicant
type SubmitApplicationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ApplicationFormSchema describes the form to API clients
type ApplicationFormSchema struct {
	Roles              []string      `json:"roles"`
	CountryCodes       []CountryCode `json:"countryCodes"`
	DefaultCountryCode string        `json:"defaultCountryCode"`
	ResumeExtensions   []string      `json:"resumeExtensions"`
	FormToken          string        `json:"formToken"`
	RecaptchaSiteKey   string        `json:"recaptchaSiteKey,omitempty"`
}
