package locale

import (
	"testing"
	"time"
)

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "zh", want: LanguageChinese},
		{input: "zh-CN", want: LanguageChinese},
		{input: "ZH_hans", want: LanguageChinese},
		{input: "en", want: LanguageEnglish},
		{input: "en-US", want: LanguageEnglish},
		{input: "fr", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := NormalizeLanguage(tc.input); got != tc.want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestLanguageFromAcceptLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "zh-CN,zh;q=0.9", want: LanguageChinese},
		{input: "en-US,en;q=0.9", want: LanguageEnglish},
		{input: "fr-FR,zh;q=0.8,en;q=0.5", want: LanguageChinese},
		{input: "fr-FR,fr;q=0.9", want: ""},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		if got := LanguageFromAcceptLanguage(tc.input); got != tc.want {
			t.Fatalf("LanguageFromAcceptLanguage(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPreferenceForLanguage(t *testing.T) {
	pref := PreferenceForLanguage("zh")
	if pref.Language != LanguageChinese || pref.HTMLLang != "zh-CN" {
		t.Fatalf("unexpected preference: %+v", pref)
	}

	fallback := PreferenceForLanguage("")
	if fallback.Language != LanguageEnglish || fallback.HTMLLang != "en-US" {
		t.Fatalf("unexpected fallback: %+v", fallback)
	}
}

func TestPick(t *testing.T) {
	if got := Pick("en", "english", "chinese"); got != "english" {
		t.Fatalf("Pick(en) = %q, want %q", got, "english")
	}
	if got := Pick("zh", "english", "chinese"); got != "chinese" {
		t.Fatalf("Pick(zh) = %q, want %q", got, "chinese")
	}
	if got := Pick("fr", "english", "chinese"); got != "english" {
		t.Fatalf("Pick(fr) = %q, want %q", got, "english")
	}
	if got := Pick("zh", "english", ""); got != "english" {
		t.Fatalf("Pick(zh) with missing chinese = %q", got)
	}
}

func TestMonthAndWeekdayNames(t *testing.T) {
	if got := MonthName("en", time.February); got != "February" {
		t.Fatalf("MonthName(en, Feb) = %q", got)
	}
	if got := MonthName("zh", time.December); got != "十二月" {
		t.Fatalf("MonthName(zh, Dec) = %q", got)
	}
	if got := MonthName("en", 13); got != "" {
		t.Fatalf("expected empty name for invalid month, got %q", got)
	}

	days := WeekdayNames("en")
	if len(days) != 7 || days[0] != "Sun" || days[6] != "Sat" {
		t.Fatalf("unexpected weekday names: %v", days)
	}
	if zh := WeekdayNames("zh"); zh[1] != "一" {
		t.Fatalf("unexpected chinese weekday names: %v", zh)
	}
}
