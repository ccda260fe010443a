package report

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const (
	// DefaultCountryCode is prepended to phone numbers without one. The tool
	// targets Mexican recruiting, so +52.
	DefaultCountryCode = "+52"
	// DefaultRecruiterName signs the contact message when none is configured.
	DefaultRecruiterName = "Recursos Humanos"
	// NoContact marks candidates whose CV carried no usable phone number.
	NoContact = "No disponible"
)

// WhatsAppLink builds a wa.me link with a prefilled interview request for the
// candidate. Non-digit characters are stripped from the phone first; a number
// without country code gets DefaultCountryCode.
func WhatsAppLink(phone, recruiterName, candidateName string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return NoContact
	}

	number := DefaultCountryCode + digits

	if strings.TrimSpace(recruiterName) == "" {
		recruiterName = DefaultRecruiterName
	}
	if strings.TrimSpace(candidateName) == "" {
		candidateName = "Candidato"
	}

	message := fmt.Sprintf("Hola %s, soy %s de la empresa. ¿Podríamos agendar una entrevista?", candidateName, recruiterName)

	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}
