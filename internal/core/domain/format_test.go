package domain

import (
	"net/url"
	"strings"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		cur    Currency
		want   string
	}{
		{"usd with grouping", 1000, CurrencyUSD, "$1,000.00"},
		{"brl with grouping", 1000, CurrencyBRL, "R$ 1.000,00"},
		{"usd zero", 0, CurrencyUSD, "$0.00"},
		{"usd cents rounded", 1234.567, CurrencyUSD, "$1,234.57"},
		{"brl fraction kept", 99.9, CurrencyBRL, "R$ 99,90"},
		{"negative does not crash", -5, CurrencyUSD, "$-5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCurrency(tt.amount, tt.cur)
			if got != tt.want {
				t.Fatalf("\nwanted:\n%q\ngot:\n%q", tt.want, got)
			}
		})
	}
}

func TestBuildChatURL(t *testing.T) {
	t.Run("strips phone punctuation, keeps leading plus", func(t *testing.T) {
		got := BuildChatURL("+55 21 99999-8888", "a.com")

		if !strings.HasPrefix(got, "https://wa.me/+5521999998888?text=") {
			t.Fatalf("\nwanted:\nphone segment +5521999998888\ngot:\n%q", got)
		}
	})

	t.Run("drops plus signs after the first digit", func(t *testing.T) {
		got := BuildChatURL("55 (21) 9+9999+8888", "a.com")

		if !strings.HasPrefix(got, "https://wa.me/5521999998888?text=") {
			t.Fatalf("\nwanted:\nphone segment 5521999998888\ngot:\n%q", got)
		}
	})

	t.Run("message names the domain and is url-encoded", func(t *testing.T) {
		got := BuildChatURL("+5521999998888", "açaí & cia.com")

		u, err := url.Parse(got)
		if err != nil {
			t.Fatalf("\nwanted:\nparseable URL\ngot:\n%v", err)
		}
		text := u.Query().Get("text")
		if !strings.Contains(text, "açaí & cia.com") {
			t.Fatalf("\nwanted:\ndecoded message containing the domain\ngot:\n%q", text)
		}
		if !strings.Contains(text, "Olá, estou interessado no domínio") {
			t.Fatalf("\nwanted:\nthe outreach template\ngot:\n%q", text)
		}
	})
}
