package lang

import (
	"strings"
	"testing"
)

func TestSupported(t *testing.T) {
	for _, language := range []string{"ru", "en"} {
		if !Supported(language) {
			t.Errorf("%s should be supported", language)
		}
	}
	for _, language := range []string{"", "de", "RU"} {
		if Supported(language) {
			t.Errorf("%q should not be supported", language)
		}
	}
}

func TestGet(t *testing.T) {
	t.Run("formats arguments", func(t *testing.T) {
		got := Get("ru", StartGreeting, "Ana")
		if !strings.HasPrefix(got, "Привет, Ana!") {
			t.Errorf("unexpected greeting: %q", got)
		}
	})

	t.Run("falls back to english", func(t *testing.T) {
		if got, want := Get("de", StartButton), Get("en", StartButton); got != want {
			t.Errorf("Get(de) = %q, want %q", got, want)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if got := Get("en", MessageID("nope")); got != "nope" {
			t.Errorf("Get(unknown) = %q", got)
		}
	})

	t.Run("percent in argument is kept", func(t *testing.T) {
		got := Get("en", StartGreeting, "100%")
		if !strings.Contains(got, "Hi, 100%!") {
			t.Errorf("unexpected greeting: %q", got)
		}
	})
}

func TestHelpMentionsFeatures(t *testing.T) {
	text := Get("en", HelpText)
	for _, feature := range []string{"every day", "clicking its name", "months", "statistics", "Add new habits", "saved automatically"} {
		if !strings.Contains(text, feature) {
			t.Errorf("help text is missing %q", feature)
		}
	}
}
