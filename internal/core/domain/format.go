package domain

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency - the two price currencies a listing carries. USD is the primary
// price; BRL is recalculated server-side from it on demand.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
)

// chatMessageTemplate is the prefilled outbound WhatsApp message. The site
// targets Brazilian buyers, so the template stays in Portuguese.
const chatMessageTemplate = "Olá, estou interessado no domínio %s."

var (
	usPrinter = message.NewPrinter(language.AmericanEnglish)
	brPrinter = message.NewPrinter(language.BrazilianPortuguese)
)

// FormatCurrency renders amount as a locale-correct currency string:
// "$1,000.00" for USD, "R$ 1.000,00" for BRL. Amounts are rounded to two
// fraction digits; zero and (out-of-contract) negative values format without
// error.
func FormatCurrency(amount float64, cur Currency) string {
	d := number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
	if cur == CurrencyBRL {
		return brPrinter.Sprintf("R$ %v", d)
	}
	return usPrinter.Sprintf("$%v", d)
}

// BuildChatURL builds a wa.me deep link with a prefilled message naming the
// domain. The phone number is reduced to digits plus at most one leading '+';
// the message text is URL-encoded.
func BuildChatURL(phoneNumber, domainName string) string {
	msg := url.QueryEscape(fmt.Sprintf(chatMessageTemplate, domainName))
	return fmt.Sprintf("https://wa.me/%s?text=%s", sanitizePhone(phoneNumber), msg)
}

func sanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
