package ai

import (
	"regexp"
	"strings"
)

// MaxLineLen is the display bound for generated chatter.
const MaxLineLen = 60

// speakerPrefixCutoff: a colon this early in the line is treated as a
// "Speaker:" prefix produced by the model.
const speakerPrefixCutoff = 28

func isQuoteRune(r rune) bool {
	switch r {
	case '"', '\'', '“', '”':
		return true
	}
	return false
}

// SanitizeOneLiner collapses raw model output to a single clean line:
// first line only, surrounding quotes stripped, printable ASCII only,
// whitespace collapsed, truncated to maxLen with an ellipsis.
func SanitizeOneLiner(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	s := strings.ReplaceAll(text, "\r", "\n")
	s = strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])

	if runes := []rune(s); len(runes) >= 2 && isQuoteRune(runes[0]) && isQuoteRune(runes[len(runes)-1]) {
		s = strings.TrimSpace(string(runes[1 : len(runes)-1]))
	}

	var b strings.Builder
	for _, r := range s {
		if (r > 31 && r < 127) || r == ' ' {
			b.WriteRune(r)
		}
	}
	s = strings.Join(strings.Fields(b.String()), " ")

	// ASCII-only by now, so byte slicing is safe.
	if len(s) > maxLen {
		s = strings.TrimRight(s[:maxLen-1], " ") + "…"
	}
	return s
}

var (
	reMyNameIs = regexp.MustCompile(`(?i)\bmy name is\b[^,!.]*[,!.]?\s*`)
	reIIs      = regexp.MustCompile(`\bI is\b`)
)

// thirdPersonVerbs maps "<name> <verb> " patterns to their first-person
// replacements (appended after "I").
var thirdPersonVerbs = [][2]string{
	{" is ", " am "},
	{" was ", " was "},
	{" has ", " have "},
	{" wants ", " want "},
	{" needs ", " need "},
	{" feels ", " feel "},
	{" likes ", " like "},
	{" thinks ", " think "},
	{" hopes ", " hope "},
	{" can't ", " can't "},
	{" cannot ", " cannot "},
}

// EnforceFirstPerson rewrites third-person references to the pet's name
// into first person. Best-effort text cleanup: the result may read
// slightly awkward, but it never panics and never grows past the input by
// more than a few characters.
func EnforceFirstPerson(petName, line string) string {
	if line == "" {
		return ""
	}
	// Drop common "Speaker: ..." prefixes (often produced by models).
	if i := strings.Index(line, ":"); i >= 0 && i < speakerPrefixCutoff {
		line = strings.TrimSpace(line[i+1:])
	}
	name := strings.TrimSpace(petName)
	if name == "" {
		return line
	}

	q := regexp.QuoteMeta(name)
	s := line
	s = regexp.MustCompile(`(?i)\b`+q+`'s\b`).ReplaceAllString(s, "my")
	s = regexp.MustCompile(`(?i)^\s*`+q+`\b`).ReplaceAllString(s, "I")

	for _, verb := range thirdPersonVerbs {
		re := regexp.MustCompile(`(?i)\b` + q + regexp.QuoteMeta(verb[0]))
		s = re.ReplaceAllString(s, "I"+verb[1])
	}

	// If the model still uses the name elsewhere, drop it (don't replace
	// with I). Near-name variants like "Tamae" go too, but the literal
	// word "Tamagotchi" survives.
	s = regexp.MustCompile(`(?i)\b`+q+`\b`).ReplaceAllString(s, "")
	s = regexp.MustCompile(`(?i)\b`+q+`[A-Za-z]{1,3}\b`).ReplaceAllStringFunc(s, func(tok string) string {
		if strings.EqualFold(tok, "tamagotchi") {
			return tok
		}
		return ""
	})
	s = regexp.MustCompile(`(?i)(,?\s*)\b`+q+`[A-Za-z]{0,3}\b[!?.]?\s*$`).ReplaceAllString(s, "")

	s = reMyNameIs.ReplaceAllString(s, "")

	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, "I am am", "I am")
	s = strings.ReplaceAll(s, "I I", "I")
	s = strings.ReplaceAll(s, "an I", "a pet")
	s = strings.ReplaceAll(s, "a I", "a pet")
	s = reIIs.ReplaceAllString(s, "I am")
	return strings.TrimSpace(s)
}
