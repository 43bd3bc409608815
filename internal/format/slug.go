package format

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/gojp/kana"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// disallowedPattern matches every run of characters that may not appear in
// a slug. Runs are collapsed into a single separator.
var disallowedPattern = regexp.MustCompile(`[^-a-zA-Z0-9!@$]+`)

// cjkRanges covers the blocks the slugifier treats as CJK text: CJK
// symbols/punctuation, hiragana, katakana, half/full-width forms, CJK
// unified ideographs and extension A.
var cjkRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3000, Hi: 0x303f, Stride: 1},
		{Lo: 0x3040, Hi: 0x309f, Stride: 1},
		{Lo: 0x30a0, Hi: 0x30ff, Stride: 1},
		{Lo: 0x3400, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9faf, Stride: 1},
		{Lo: 0xff00, Hi: 0xff9f, Stride: 1},
	},
}

// asciiReplacer handles Latin letters that NFKD cannot decompose to an
// ASCII base character.
var asciiReplacer = strings.NewReplacer(
	"ø", "o", "Ø", "O",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ß", "ss",
	"ð", "d", "Ð", "D",
	"þ", "th", "Þ", "TH",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
)

// slugCache memoizes Slugify results for the process lifetime. Entries are
// inserted once and never evicted; inputs are short metadata strings.
var slugCache sync.Map

// jaTokenizer is built lazily: the dictionary is large and most processes
// never see CJK input.
var jaTokenizer = sync.OnceValues(func() (*tokenizer.Tokenizer, error) {
	return tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
})

// Slugify normalizes a string into an ASCII token containing only
// characters from [-a-zA-Z0-9!@$]. Latin text is lower-cased and stripped
// of accents; CJK text is romanized phonetically before the same cleanup.
// Results are memoized by exact input. An empty input yields "".
func Slugify(s string) string {
	if v, ok := slugCache.Load(s); ok {
		return v.(string)
	}

	var slug string
	if !containsCJK(s) {
		slug = slugifyASCII(s)
	} else {
		slug = slugifyASCII(romanize(cleanLatinSpans(s)))
	}

	slugCache.Store(s, slug)
	return slug
}

// slugifyASCII is the single-pass slug: fold to ASCII, lower-case, collapse
// disallowed runs into separators, trim separators. Any character the fold
// could not map to ASCII is swallowed by the collapse pass.
func slugifyASCII(s string) string {
	s = foldASCII(s)
	s = strings.ToLower(s)
	s = disallowedPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// cleanLatinSpans slugifies the non-CJK spans of a mixed string while
// keeping CJK runs intact, so Latin words are already clean when the
// romanization pass runs. Adjacent spans are joined with a separator.
func cleanLatinSpans(s string) string {
	var parts []string
	var span []rune
	spanCJK := false

	flush := func() {
		if len(span) == 0 {
			return
		}
		text := string(span)
		if !spanCJK {
			text = slugifyASCII(text)
		}
		if text != "" {
			parts = append(parts, text)
		}
		span = span[:0]
	}

	for _, r := range s {
		if isCJK(r) != spanCJK {
			flush()
			spanCJK = isCJK(r)
		}
		span = append(span, r)
	}
	flush()

	return strings.Join(parts, "-")
}

// romanize converts the CJK segments of s to their Latin readings. A
// separator is inserted between two adjacent romanized segments so that
// word boundaries survive; segments whose romanization equals their
// original form were not CJK and get no separator. If the tokenizer cannot
// be built the input is returned unchanged and the final collapse pass
// drops the CJK characters.
func romanize(s string) string {
	t, err := jaTokenizer()
	if err != nil {
		return s
	}

	type segment struct {
		text      string
		romanized bool
	}

	tokens := t.Tokenize(s)
	segments := make([]segment, 0, len(tokens))
	for _, tok := range tokens {
		text := tok.Surface
		if containsCJK(tok.Surface) {
			if reading, ok := tok.Reading(); ok {
				text = kana.KanaToRomaji(reading)
			} else {
				text = kana.KanaToRomaji(tok.Surface)
			}
		}
		segments = append(segments, segment{text: text, romanized: text != tok.Surface})
	}

	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg.text)
		if seg.romanized && i < len(segments)-1 && segments[i+1].romanized {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// foldASCII transliterates accented Latin characters to their ASCII base
// form. The transform chain is built per call; chained transformers carry
// state and must not be shared across goroutines.
func foldASCII(s string) string {
	s = asciiReplacer.Replace(s)
	chain := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(chain, s)
	if err != nil {
		return s
	}
	return out
}

func isCJK(r rune) bool {
	return unicode.Is(cjkRanges, r)
}

func containsCJK(s string) bool {
	return strings.ContainsFunc(s, isCJK)
}
