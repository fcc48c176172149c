package models

import (
	"strconv"
	"strings"
	"time"
)

// Link is a named navigation target. Href is a site path, an in-page anchor
// on the home page (#section), or an external URL.
type Link struct {
	Name string
	Href string
}

// Resolve returns the href to render on the page at currentPath. Anchors
// point at the home page from every other page.
func (l Link) Resolve(currentPath string) string {
	if strings.HasPrefix(l.Href, "#") && currentPath != "/" {
		return "/" + l.Href
	}
	return l.Href
}

// External reports whether the link leaves the site
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http://") || strings.HasPrefix(l.Href, "https://")
}

// LinkGroup is one titled footer column
type LinkGroup struct {
	Title string
	Links []Link
}

// Footer holds the content shared by every page's footer
type Footer struct {
	Blurb   string
	Groups  []LinkGroup
	Social  []Link
	Company string
	Credit  string
}

// Copyright is the footer's copyright line for year
func (f Footer) Copyright(year int) string {
	line := "© " + strconv.Itoa(year) + " " + f.Company + "."
	if f.Credit != "" {
		line += " " + f.Credit + "."
	}
	return line + " All rights reserved."
}

// CurrentYear is the year shown in the copyright line
func CurrentYear() int {
	return time.Now().Year()
}

// NewFooter builds the site footer for company, whose inbox backs the email link
func NewFooter(company, inbox string) Footer {
	return Footer{
		Blurb:   "Transforming ideas into powerful digital solutions. We're your trusted partner for web development, mobile apps, and enterprise software.",
		Company: company,
		Credit:  "Created by Khalid Bin Waheed",
		Groups: []LinkGroup{
			{Title: "Company", Links: []Link{
				{Name: "About", Href: "#about"},
				{Name: "Services", Href: "#services"},
				{Name: "Portfolio", Href: "#portfolio"},
				{Name: "Career", Href: "/careers"},
			}},
			{Title: "Resources", Links: []Link{
				{Name: "Blog", Href: "/blog"},
				{Name: "Case Studies", Href: "/case-studies"},
				{Name: "Documentation", Href: "/documentation"},
				{Name: "Support", Href: "/support"},
			}},
			{Title: "Legal", Links: []Link{
				{Name: "Privacy Policy", Href: "/privacy-policy"},
				{Name: "Terms of Service", Href: "/terms-of-service"},
				{Name: "Cookie Policy", Href: "/cookie-policy"},
			}},
		},
		Social: []Link{
			{Name: "GitHub", Href: "https://github.com/codecraftpakistan"},
			{Name: "LinkedIn", Href: "https://www.linkedin.com/company/code-craft-pakistan"},
			{Name: "X (Twitter)", Href: "https://x.com/codecraftpak"},
			{Name: "Instagram", Href: "https://www.instagram.com/codecraftpakistan/"},
			{Name: "Facebook", Href: "https://www.facebook.com/share/1AfmkTNzC7/"},
			{Name: "TikTok", Href: "https://www.tiktok.com/@codecraftpakistan?_r=1&_t=ZS-92viO4Wc7lp"},
			{Name: "Email", Href: "mailto:" + inbox},
		},
	}
}

// HeaderLinks are the primary navigation entries
var HeaderLinks = []Link{
	{Name: "Home", Href: "/"},
	{Name: "About", Href: "#about"},
	{Name: "Services", Href: "#services"},
	{Name: "Portfolio", Href: "#portfolio"},
	{Name: "Careers", Href: "/careers"},
}

// InfoPage is a static informational page
type InfoPage struct {
	Path  string
	Title string
	Intro string
	// ShowLastUpdated appends the legal revision date
	ShowLastUpdated bool
}

// InfoPages are the static pages served under their paths
var InfoPages = []InfoPage{
	{
		Path:  "/support",
		Title: "Support",
		Intro: "Need help? Our support team is here for you. Contact details and support resources coming soon.",
	},
	{
		Path:            "/privacy-policy",
		Title:           "Privacy Policy",
		Intro:           "Your privacy is important to us. This Privacy Policy explains how we collect, use, and protect your information.",
		ShowLastUpdated: true,
	},
	{
		Path:            "/terms-of-service",
		Title:           "Terms of Service",
		Intro:           "Welcome to Code Craft Pakistan. By using our website and services, you agree to these Terms of Service.",
		ShowLastUpdated: true,
	},
	{
		Path:  "/cookie-policy",
		Title: "Cookie Policy",
		Intro: "We use cookies to enhance your experience. This policy describes what cookies we use and how you can manage them.",
	},
}
