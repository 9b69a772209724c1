package content

import "strings"

// mojibakeReplacer repairs UTF-8 text that was decoded as Latin-1 somewhere
// upstream. Danish letters are the common victims, plus the usual smart
// punctuation. The bare closing quote sequence stays last so the replacer
// prefers the longer matches it prefixes.
var mojibakeReplacer = strings.NewReplacer(
	"Ã¦", "æ",
	"Ã¸", "ø",
	"Ã¥", "å",
	"Ã†", "Æ",
	"Ã˜", "Ø",
	"Ã…", "Å",
	"Ã©", "é",
	"Ã¨", "è",
	"Ã¼", "ü",
	"Ã¶", "ö",
	"Ã¤", "ä",
	"â€™", "’",
	"â€˜", "‘",
	"â€œ", "“",
	"â€“", "–",
	"â€¦", "…",
	"â€", "”",
	"Â ", " ",
)

// FixMojibake repairs double-encoded characters in extracted text
func FixMojibake(s string) string {
	if !strings.ContainsRune(s, 'Ã') && !strings.Contains(s, "â€") && !strings.Contains(s, "Â ") {
		return s
	}
	return mojibakeReplacer.Replace(s)
}
