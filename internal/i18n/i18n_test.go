package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	cases := map[string]language.Tag{
		"":        language.Korean,
		"ko":      language.Korean,
		"ko-KR":   language.Korean,
		"en":      language.English,
		"en-US":   language.English,
		"klingon": language.Korean,
	}

	for input, want := range cases {
		assert.Equal(t, want, Resolve(input), "input %q", input)
	}
}

func TestPrinter_Messages(t *testing.T) {
	assert.Equal(t, "네트워크 오류가 발생했습니다.", Printer("ko").Sprintf("error.network"))
	assert.Equal(t, "A network error occurred.", Printer("en").Sprintf("error.network"))
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	assert.ElementsMatch(t, keys(koMessages), keys(enMessages))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
