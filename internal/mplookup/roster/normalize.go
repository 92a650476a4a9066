package roster

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dashes are the dash-like code points that appear in riding names across
// dataset revisions. Elections Canada uses em dashes ("Oakville
// North—Burlington") while the roster and upstream APIs variously use
// hyphens, en dashes and minus signs.
var dashes = map[rune]bool{
	'‐': true, // hyphen
	'‑': true, // non-breaking hyphen
	'‒': true, // figure dash
	'–': true, // en dash
	'—': true, // em dash
	'―': true, // horizontal bar
	'−': true, // minus sign
	'﹘': true, // small em dash
	'﹣': true, // small hyphen-minus
	'－': true, // fullwidth hyphen-minus
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize reduces a riding name to its canonical comparison form:
// accents folded to ASCII, lowercased, every dash variant unified to "-",
// characters outside printable ASCII dropped, whitespace runs collapsed,
// and the result trimmed. The same function is applied to roster rows at
// load time and to resolved names at lookup time; the two sides must never
// diverge.
func Normalize(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case dashes[r]:
			b.WriteRune('-')
		case unicode.IsSpace(r):
			// Tabs, newlines and NBSP count as word breaks, not noise;
			// the Fields join below collapses the runs.
			b.WriteRune(' ')
		case r >= 0x20 && r <= 0x7E:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
