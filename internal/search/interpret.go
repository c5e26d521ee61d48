// ABOUTME: Korean query interpretation for exercise catalog search.
// ABOUTME: Maps Korean aliases and choseong abbreviations to canonical English terms; never fails.
package search

import (
	"sort"
	"strings"
)

// Field identifies which catalog attribute a resolved term targets.
type Field string

const (
	FieldName      Field = "name"
	FieldBodyPart  Field = "bodyPart"
	FieldTarget    Field = "target"
	FieldEquipment Field = "equipment"
)

// Resolution is one interpreted search term.
type Resolution struct {
	Field Field
	Term  string
}

// bodyPartAliases maps Korean body part names to canonical catalog values.
var bodyPartAliases = map[string]string{
	"가슴":  "chest",
	"등":   "back",
	"어깨":  "shoulders",
	"팔":   "upper arms",
	"상완":  "upper arms",
	"전완":  "lower arms",
	"하체":  "upper legs",
	"다리":  "upper legs",
	"종아리": "lower legs",
	"복근":  "waist",
	"배":   "waist",
	"목":   "neck",
	"유산소": "cardio",
}

// targetAliases maps Korean muscle names to canonical target values.
var targetAliases = map[string]string{
	"이두":    "biceps",
	"이두근":   "biceps",
	"삼두":    "triceps",
	"삼두근":   "triceps",
	"승모":    "traps",
	"승모근":   "traps",
	"광배":    "lats",
	"광배근":   "lats",
	"삼각근":   "delts",
	"흉근":    "pectorals",
	"대흉근":   "pectorals",
	"둔근":    "glutes",
	"엉덩이":   "glutes",
	"대퇴사두":  "quads",
	"허벅지":   "quads",
	"햄스트링":  "hamstrings",
	"복직근":   "abs",
	"종아리근":  "calves",
	"전완근":   "forearms",
	"척추기립근": "spine",
}

// equipmentAliases maps Korean equipment names to canonical values.
var equipmentAliases = map[string]string{
	"바벨":    "barbell",
	"덤벨":    "dumbbell",
	"아령":    "dumbbell",
	"케이블":   "cable",
	"머신":    "leverage machine",
	"스미스머신": "smith machine",
	"케틀벨":   "kettlebell",
	"밴드":    "band",
	"맨몸":    "body weight",
	"짐볼":    "stability ball",
	"폼롤러":   "roller",
	"로프":    "rope",
}

// nameAliases maps Korean exercise names to canonical English names.
var nameAliases = map[string]string{
	"벤치":     "bench press",
	"벤치프레스":  "bench press",
	"스쿼트":    "squat",
	"데드":     "deadlift",
	"데드리프트":  "deadlift",
	"풀업":     "pull up",
	"턱걸이":    "pull up",
	"친업":     "chin up",
	"푸시업":    "push up",
	"팔굽혀펴기":  "push up",
	"런지":     "lunge",
	"숄더프레스":  "shoulder press",
	"오버헤드프레스": "overhead press",
	"로우":     "row",
	"컬":      "curl",
	"딥스":     "dips",
	"플랭크":    "plank",
	"크런치":    "crunch",
	"레그프레스":  "leg press",
	"레그컬":    "leg curl",
	"랫풀다운":   "lat pulldown",
	"사이드레터럴레이즈": "lateral raise",
	"힙쓰러스트":  "hip thrust",
}

// aliasGroup pairs an alias table with the field its values belong to.
// Resolution order follows field specificity: body part, then target,
// then equipment, then exercise name.
var aliasGroups = []struct {
	field   Field
	aliases map[string]string
}{
	{FieldBodyPart, bodyPartAliases},
	{FieldTarget, targetAliases},
	{FieldEquipment, equipmentAliases},
	{FieldName, nameAliases},
}

// Ready reports whether a query is long enough to run. A single Hangul
// syllable is often a complete word, so Korean queries need only one
// character; everything else needs two.
func Ready(query string) bool {
	q := strings.TrimSpace(query)
	n := len([]rune(q))
	if n == 0 {
		return false
	}
	if ContainsHangul(q) {
		return n >= 1
	}
	return n >= 2
}

// Interpret resolves a raw query into search terms. Korean aliases map
// to canonical English tokens; choseong-only tokens prefix-match the
// choseong reduction of every known alias; anything unresolved falls
// back to itself as a literal name-field term. Interpretation never
// fails, so an unrecognized Korean string produces a likely-empty
// search rather than an error.
func Interpret(query string) []Resolution {
	var out []Resolution
	seen := make(map[Resolution]bool)

	add := func(r Resolution) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}

	for _, token := range strings.Fields(strings.TrimSpace(query)) {
		if res, ok := resolveAlias(token); ok {
			add(res)
			continue
		}
		if IsChoseongOnly(token) {
			matches := resolveChoseong(token)
			if len(matches) > 0 {
				for _, m := range matches {
					add(m)
				}
				continue
			}
		}
		// Verbatim fallback, lowercased for the English-field search.
		add(Resolution{Field: FieldName, Term: strings.ToLower(token)})
	}
	return out
}

// resolveAlias looks a token up across the alias tables.
func resolveAlias(token string) (Resolution, bool) {
	for _, g := range aliasGroups {
		if term, ok := g.aliases[token]; ok {
			return Resolution{Field: g.field, Term: term}, true
		}
	}
	return Resolution{}, false
}

// resolveChoseong prefix-matches a choseong-only token against the
// choseong reduction of every known alias. Results are sorted so that
// map iteration order never leaks into search results.
func resolveChoseong(token string) []Resolution {
	var out []Resolution
	seen := make(map[Resolution]bool)
	for _, g := range aliasGroups {
		for alias, term := range g.aliases {
			if strings.HasPrefix(ChoseongOf(alias), token) {
				r := Resolution{Field: g.field, Term: term}
				if !seen[r] {
					seen[r] = true
					out = append(out, r)
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Field != out[j].Field {
			return out[i].Field < out[j].Field
		}
		return out[i].Term < out[j].Term
	})
	return out
}
