package en

import (
	"strings"

	"github.com/extractly/duckling/rule"
	"github.com/extractly/duckling/token"
)

// RegexDimRules covers the single-regex-leaf dimensions: phone numbers and
// URLs are ported from dedicated rule tables; email and credit-card numbers
// have no such source file, so their patterns follow the same
// leaf-regex-then-validate shape used there.
func RegexDimRules() []rule.Rule {
	var rules []rule.Rule
	rules = append(rules, PhoneNumberRules()...)
	rules = append(rules, URLRules()...)
	rules = append(rules, EmailRules()...)
	rules = append(rules, CreditCardRules()...)
	return rules
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

// PhoneNumberRules recognizes US and loose international phone number
// shapes, gated on a minimum digit count.
func PhoneNumberRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "phone number (US)",
			Pattern: []rule.Item{rule.RX(`(\+?1?\s*\(?[2-9]\d{2}\)?\s*[-.\s]?\d{3}\s*[-.\s]?\d{4})`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				if countDigits(text) < 10 {
					return nil, false
				}
				return token.PhoneNumber{Value: text}, true
			},
		},
		{
			Name:    "phone number (international)",
			Pattern: []rule.Item{rule.RX(`(\+\d{1,3}\s*[-.]?\s*\d[\d\s\-.]{7,15}\d)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				if countDigits(text) < 10 {
					return nil, false
				}
				return token.PhoneNumber{Value: text}, true
			},
		},
	}
}

func extractDomain(url string) (string, bool) {
	without := strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
	without = strings.TrimPrefix(without, "www.")
	domain := without
	for _, sep := range []string{"/", "?", "#"} {
		if i := strings.Index(domain, sep); i >= 0 {
			domain = domain[:i]
		}
	}
	if domain == "" {
		return "", false
	}
	return domain, true
}

// URLRules recognizes http(s):// and bare www. URLs and extracts the
// domain.
func URLRules() []rule.Rule {
	return []rule.Rule{
		{
			Name: "url (with protocol)",
			Pattern: []rule.Item{rule.RX(
				`(https?://(?:www\.)?[-a-z0-9@:%._+~#=]+\.[a-z]{2,}[-a-z0-9@:%_+.~#?&/=]*)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				domain, ok := extractDomain(text)
				if !ok {
					return nil, false
				}
				return token.URLToken{Value: text, Domain: domain}, true
			},
		},
		{
			Name:    "url (www.)",
			Pattern: []rule.Item{rule.RX(`(www\.[-a-z0-9@:%._+~#=]+\.[a-z]{2,}[-a-z0-9@:%_+.~#?&/=]*)`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				domain, ok := extractDomain(text)
				if !ok {
					return nil, false
				}
				return token.URLToken{Value: text, Domain: domain}, true
			},
		},
	}
}

// EmailRules recognizes a single email-address pattern.
func EmailRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "email",
			Pattern: []rule.Item{rule.RX(`([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				return token.Email{Value: text}, true
			},
		},
	}
}

// creditCardIssuer guesses a card network from its IIN (the leading digit
// run), the same prefix ranges card issuers publish for BIN routing.
func creditCardIssuer(digits string) (string, bool) {
	switch {
	case strings.HasPrefix(digits, "4"):
		return "visa", true
	case len(digits) >= 2 && digits[:2] >= "51" && digits[:2] <= "55":
		return "mastercard", true
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "amex", true
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return "discover", true
	default:
		return "", false
	}
}

// luhnValid checks the Luhn checksum digit-reversal rule credit-card
// numbers are issued under.
func luhnValid(digits string) bool {
	if len(digits) < 12 {
		return false
	}
	sum := 0
	alt := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return sum%10 == 0
}

// CreditCardRules recognizes digit-group credit card numbers, validates
// them against the Luhn checksum, and guesses the issuer from the IIN.
func CreditCardRules() []rule.Rule {
	return []rule.Rule{
		{
			Name:    "credit card number",
			Pattern: []rule.Item{rule.RX(`(\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{1,4})`)},
			Production: func(nodes []*token.Node) (token.Data, bool) {
				text, ok := regexGroup(nodes[0], 1)
				if !ok {
					return nil, false
				}
				digits := strings.Map(func(r rune) rune {
					if r >= '0' && r <= '9' {
						return r
					}
					return -1
				}, text)
				if !luhnValid(digits) {
					return nil, false
				}
				cc := token.CreditCardNumber{Value: text}
				if issuer, ok := creditCardIssuer(digits); ok {
					cc.Issuer = &issuer
				}
				return cc, true
			},
		},
	}
}
