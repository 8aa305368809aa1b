package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Wireless Mouse", "wireless-mouse"},
		{"collapse runs", "  Hello,   World!!  ", "hello-world"},
		{"trim edges", "--already-slugged--", "already-slugged"},
		{"digits", "iPhone 15 Pro Max", "iphone-15-pro-max"},
		{"diacritics", "Crème Brûlée", "creme-brulee"},
		{"sharp s", "Straße", "strasse"},
		{"cyrillic", "Привет мир", "privet-mir"},
		{"fullwidth", "ＡＢＣ 123", "abc-123"},
		{"underscores", "snake_case_name", "snake-case-name"},
		{"at sign", "Tom @ Home", "tom-at-home"},
		{"ampersand", "Home & Garden", "home-garden"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Make(tc.in))
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	for _, in := range []string{"Wireless Mouse", "Crème Brûlée", "a--b__c"} {
		once := Make(in)
		assert.Equal(t, once, Make(once))
	}
}
