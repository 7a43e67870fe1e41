package parser

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"alfredoptarigan/resume-extractor/internal/models"
)

var (
	emailPattern     = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern     = regexp.MustCompile(`\+?\d[\d \t().\-]{6,}\d`)
	yearRangePattern = regexp.MustCompile(`^\d{4}\s*[-–]\s*\d{4}$`)
	urlPattern       = regexp.MustCompile(
		`(?i)https?://[^\s()<>\[\]"'\\]+` +
			`|(?:www\.)?(?:github\.com|linkedin\.com|x\.com|twitter\.com)/[^\s()<>\[\]"'\\]+` +
			`|www\.[^\s()<>\[\]"'\\]+`,
	)
)

// minPhoneDigits is the shortest digit run accepted as a phone number.
const minPhoneDigits = 8

type Contacts struct {
	Email *string
	Phone *string
}

// ExtractContacts finds the first email and phone number in text and
// classifies every URL into the social slots.
func ExtractContacts(text string) (Contacts, models.Socials) {
	var contacts Contacts
	if m := emailPattern.FindString(text); m != "" {
		contacts.Email = &m
	}
	contacts.Phone = findPhone(text)

	return contacts, classifyURLs(findURLs(text))
}

func findPhone(text string) *string {
	for _, m := range phonePattern.FindAllString(text, -1) {
		candidate := strings.TrimSpace(m)
		if yearRangePattern.MatchString(candidate) {
			continue
		}
		if countDigits(candidate) < minPhoneDigits {
			continue
		}
		return &candidate
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// findURLs returns distinct URLs in order of first appearance, each with
// a scheme.
func findURLs(text string) []string {
	var urls []string
	seen := make(map[string]bool)

	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		hasScheme := strings.HasPrefix(strings.ToLower(raw), "http")

		// Scheme-less hosts glued to a word or an email are not links.
		if !hasScheme && loc[0] > 0 {
			prev, _ := utf8.DecodeLastRuneInString(text[:loc[0]])
			if prev == '@' || prev == '.' || prev == '/' || unicode.IsLetter(prev) || unicode.IsDigit(prev) {
				continue
			}
		}

		raw = strings.TrimRight(raw, ".,;:!?*_")
		if !hasScheme {
			raw = "https://" + raw
		}

		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			continue
		}
		if seen[raw] {
			continue
		}
		seen[raw] = true
		urls = append(urls, raw)
	}
	return urls
}

func classifyURLs(urls []string) models.Socials {
	var socials models.Socials
	for _, raw := range urls {
		u := raw
		switch host := urlHost(raw); {
		case strings.Contains(host, "github.com"):
			if socials.Github == nil {
				socials.Github = &u
			}
		case strings.Contains(host, "linkedin.com"):
			if socials.Linkedin == nil {
				socials.Linkedin = &u
			}
		case host == "x.com" || strings.HasSuffix(host, ".x.com") || strings.Contains(host, "twitter.com"):
			if socials.X == nil {
				socials.X = &u
			}
		default:
			if socials.Website == nil {
				socials.Website = &u
			}
		}
	}
	return socials
}

func urlHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
