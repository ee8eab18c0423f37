// Package contactlink builds the mailto, tel and WhatsApp links shown in the
// detail panels.
package contactlink

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/topronto/admin-backoffice/internal/models"
)

// Link is a contact action as rendered by the UI. A disabled link has no Href.
type Link struct {
	Kind    string `json:"kind"`
	Href    string `json:"href,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Encode percent-encodes s as a URI component (space becomes %20).
func Encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Mailto builds mailto:{email}?subject=..&body=.. ; empty parts are omitted.
func Mailto(email, subject, body string) string {
	var q []string
	if subject != "" {
		q = append(q, "subject="+Encode(subject))
	}
	if body != "" {
		q = append(q, "body="+Encode(body))
	}
	href := "mailto:" + strings.TrimSpace(email)
	if len(q) > 0 {
		href += "?" + strings.Join(q, "&")
	}
	return href
}

// Tel returns a tel: link built from the digits of phone, keeping a leading
// "+". It returns "" when phone has no digits.
func Tel(phone string) string {
	d := Digits(phone)
	if d == "" {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		d = "+" + d
	}
	return "tel:" + d
}

// Digits strips every non-digit character.
func Digits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// WhatsApp returns https://wa.me/{digits}?text=.. ; ok is false when the phone
// has no digits, in which case the action must be shown disabled.
func WhatsApp(phone, text string) (string, bool) {
	d := Digits(phone)
	if d == "" {
		return "", false
	}
	href := "https://wa.me/" + d
	if text != "" {
		href += "?text=" + Encode(text)
	}
	return href, true
}

func firstWord(s string) string {
	if f := strings.FieldsFunc(s, unicode.IsSpace); len(f) > 0 {
		return f[0]
	}
	return s
}

const (
	applicationSubject = "Candidatura"
	applicationBody    = "Olá %s,\n\nObrigado pela sua candidatura. Entraremos em contacto em breve.\n\nCumprimentos,\nEquipe Topronto"
	applicationWAText  = "Olá %s, obrigado pela sua candidatura. Entraremos em contacto em breve."
)

// ApplicationEmail is the canned reply to a job applicant.
func ApplicationEmail(a models.JobApplication) string {
	return Mailto(a.Email, applicationSubject, fmt.Sprintf(applicationBody, firstWord(a.FirstName)))
}

// ApplicationLinks lists email, phone and WhatsApp actions for an applicant.
func ApplicationLinks(a models.JobApplication) []Link {
	wa, ok := WhatsApp(a.Phone, fmt.Sprintf(applicationWAText, firstWord(a.FirstName)))
	tel := Tel(a.Phone)
	return []Link{
		{Kind: "email", Href: ApplicationEmail(a), Enabled: true},
		{Kind: "phone", Href: tel, Enabled: tel != ""},
		{Kind: "whatsapp", Href: wa, Enabled: ok},
	}
}

// ReplyMailto answers a contact message with "Re: {subject}".
func ReplyMailto(c models.Contact) string {
	subject := ""
	if s := strings.TrimSpace(c.Subject); s != "" {
		subject = "Re: " + s
	}
	return Mailto(c.Email, subject, "")
}

func ContactLinks(c models.Contact) []Link {
	tel := Tel(c.PhoneNumber())
	return []Link{
		{Kind: "reply", Href: ReplyMailto(c), Enabled: true},
		{Kind: "phone", Href: tel, Enabled: tel != ""},
	}
}

// PersonLinks is the plain email and phone pair used for drivers and enterprises.
func PersonLinks(email, phone string) []Link {
	tel := Tel(phone)
	return []Link{
		{Kind: "email", Href: Mailto(email, "", ""), Enabled: strings.TrimSpace(email) != ""},
		{Kind: "phone", Href: tel, Enabled: tel != ""},
	}
}
