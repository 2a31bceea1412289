package text

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/util"
)

// UnitWords are the counting units a quantity may be attached to.
var UnitWords = []string{"개", "박스", "봉지", "팩", "통", "세트", "kg", "키로"}

// UnitAlternation is the regex alternation over UnitWords, reused by the
// matcher strategies.
var UnitAlternation = strings.Join(UnitWords, "|")

// UnitSynonyms groups interchangeable unit spellings. A fragment saying
// "상자" should still line up with a product titled "박스".
var UnitSynonyms = map[string][]string{
	"개":  {"개"},
	"박스": {"박스", "상자", "곽"},
	"봉지": {"봉지", "봉다리"},
	"팩":  {"팩"},
	"통":  {"통"},
	"세트": {"세트", "셋트"},
	"kg": {"kg", "키로", "킬로"},
	"키로": {"키로", "kg", "킬로"},
}

// NumberWord is one entry of the Korean numeral lexicon. Determiner forms
// (한, 두, 세, 네) only count when a unit word follows; standalone forms
// (하나, 둘, ...) count on their own.
type NumberWord struct {
	Word      string
	Value     int
	NeedsUnit bool
}

// NumberWords is ordered longest-first so determiner forms never shadow
// their standalone counterparts.
var NumberWords = []NumberWord{
	{"하나", 1, false},
	{"다섯", 5, false},
	{"여섯", 6, false},
	{"일곱", 7, false},
	{"여덟", 8, false},
	{"아홉", 9, false},
	{"둘", 2, false},
	{"셋", 3, false},
	{"넷", 4, false},
	{"열", 10, false},
	{"한", 1, true},
	{"두", 2, true},
	{"세", 3, true},
	{"네", 4, true},
}

const numeralAlternation = "하나|다섯|여섯|일곱|여덟|아홉|둘|셋|넷|열|한|두|세|네"
const standaloneAlternation = "하나|다섯|여섯|일곱|여덟|아홉|둘|셋|넷|열"
const trailingJosa = `(?:이요|요|주세요|씩|만)?`

var (
	digitsUnitPattern    = regexp.MustCompile(`(\d+)\s*(?:` + UnitAlternation + `)`)
	koreanUnitPattern    = regexp.MustCompile(`(` + numeralAlternation + `)\s*(?:` + UnitAlternation + `)`)
	standaloneWordSuffix = regexp.MustCompile(`^(` + standaloneAlternation + `)` + trailingJosa + `$`)
	trailingDigits       = regexp.MustCompile(`(\d+)\s*$`)
	firstDigits          = regexp.MustCompile(`\d+`)
	phoneShapedPattern   = regexp.MustCompile(`^0\d{3,}$`)
	bareQuantityPattern  = regexp.MustCompile(
		`^(?:\d{1,3}\s*(?:` + UnitAlternation + `)?` +
			`|(?:` + standaloneAlternation + `)` +
			`|(?:` + numeralAlternation + `)\s*(?:` + UnitAlternation + `))\s*` +
			trailingJosa + `$`)
)

// PhoneShaped reports whether a digit run should be read as (part of) a
// phone number instead of a quantity.
func PhoneShaped(digits string) bool {
	return phoneShapedPattern.MatchString(digits)
}

// ClampQuantity bounds a quantity to the domain range [1, 99].
func ClampQuantity(quantity int) int {
	return util.Clamp(quantity, constants.SuggestionLimits.MinQuantity, constants.SuggestionLimits.MaxQuantity)
}

// ExtractQuantity pulls a quantity out of a comment fragment. Priority:
// digits directly followed by a unit word, then the Korean numeral lexicon,
// then a trailing bare digit run. Phone-shaped digit runs never count, and
// a trailing run of 4+ digits is treated as a phone number even without a
// leading zero.
func ExtractQuantity(fragment string) (int, bool) {
	normalized := Normalize(fragment)
	if normalized == "" {
		return 0, false
	}

	if m := digitsUnitPattern.FindStringSubmatch(normalized); m != nil {
		if !PhoneShaped(m[1]) {
			return ClampQuantity(parseDigits(m[1])), true
		}
	}

	if value, ok := findKoreanNumeral(normalized); ok {
		return ClampQuantity(value), true
	}

	if m := trailingDigits.FindStringSubmatch(normalized); m != nil {
		if !PhoneShaped(m[1]) && len(m[1]) < 4 {
			return ClampQuantity(parseDigits(m[1])), true
		}
	}

	return 0, false
}

// ExtractLooseQuantity additionally accepts a bare digit run anywhere in
// the fragment. Used by the single-product heuristic where a naked number
// is enough.
func ExtractLooseQuantity(fragment string) (int, bool) {
	if quantity, ok := ExtractQuantity(fragment); ok {
		return quantity, true
	}

	normalized := Normalize(fragment)
	if digits := firstDigits.FindString(normalized); digits != "" {
		if !PhoneShaped(digits) && len(digits) < 4 {
			return ClampQuantity(parseDigits(digits)), true
		}
	}
	return 0, false
}

// LooksLikeBareQuantity reports whether a whole comment is nothing but a
// quantity expression ("3", "2개요", "두개요", "하나요").
func LooksLikeBareQuantity(comment string) bool {
	normalized := Normalize(comment)
	if normalized == "" {
		return false
	}
	return bareQuantityPattern.MatchString(normalized)
}

func findKoreanNumeral(normalized string) (int, bool) {
	if m := koreanUnitPattern.FindStringSubmatch(normalized); m != nil {
		if value, ok := numeralValue(m[1]); ok {
			return value, true
		}
	}

	for _, token := range strings.Fields(normalized) {
		if m := standaloneWordSuffix.FindStringSubmatch(token); m != nil {
			if value, ok := numeralValue(m[1]); ok {
				return value, true
			}
		}
	}

	return 0, false
}

func numeralValue(word string) (int, bool) {
	for _, entry := range NumberWords {
		if entry.Word == word {
			return entry.Value, true
		}
	}
	return 0, false
}

// parseDigits converts an all-digit string; values too large for int are
// clamped to the domain maximum instead of rejected.
func parseDigits(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return constants.SuggestionLimits.MaxQuantity
	}
	return value
}
