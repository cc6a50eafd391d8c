package krishna

import (
	"fmt"
	"regexp"
	"strings"
)

// Intent is the bucket a question falls into; it selects the instruction
// clause appended to the persona preamble. Never persisted.
type Intent int

const (
	IntentGeneral Intent = iota
	IntentVerse
	IntentConcept
	IntentEmotional
	IntentGreeting
)

func (i Intent) String() string {
	switch i {
	case IntentVerse:
		return "verse-reference"
	case IntentConcept:
		return "concept"
	case IntentEmotional:
		return "emotional"
	case IntentGreeting:
		return "greeting"
	default:
		return "general"
	}
}

// Matches "chapter 2 verse 47", "2.47", "ch 2 shloka 47" and similar.
var verseRe = regexp.MustCompile(`(?i)(?:chapter\s*)?(\d+)[\s.:,-]*(?:verse|shloka)?[\s.:,-]*(\d+)`)

var (
	conceptKeywords  = []string{"karma", "dharma", "moksha", "yoga", "atman", "bhakti", "detachment", "maya", "truth"}
	emotionKeywords  = []string{"sad", "confused", "stress", "fear", "lost", "angry", "failure", "purpose", "meaning"}
	greetingKeywords = []string{"hello", "hi", "namaste", "pranam", "who are you"}
)

// Classify buckets a question. A verse-reference match wins outright, even
// when concept or emotion keywords are also present; the keyword buckets are
// then tried in fixed priority order. Returns the chapter and verse strings
// for a verse-reference question, empty otherwise.
func Classify(question string) (Intent, string, string) {
	if m := verseRe.FindStringSubmatch(question); m != nil {
		return IntentVerse, m[1], m[2]
	}

	lower := strings.ToLower(question)
	if containsAny(lower, conceptKeywords) {
		return IntentConcept, "", ""
	}
	if containsAny(lower, emotionKeywords) {
		return IntentEmotional, "", ""
	}
	if containsAny(lower, greetingKeywords) {
		return IntentGreeting, "", ""
	}
	return IntentGeneral, "", ""
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

const personaPreamble = `
You are Lord Krishna. Speak calmly, kindly, and with spiritual clarity.
Address the seeker as "dear one" or "Arjuna". Include relevant Gita references.
Always respond in valid JSON only - no markdown, no code blocks:
{
  "response": "<Krishna's divine answer>",
  "reference": "<chapter.verse or '—'>"
}
`

// BuildPrompt assembles the system instruction for a question: the fixed
// persona preamble, a clause chosen by intent, and the verbatim question.
func BuildPrompt(question string) string {
	intent, chapter, verse := Classify(question)

	instruction := personaPreamble
	switch intent {
	case IntentVerse:
		instruction += fmt.Sprintf("The seeker refers to Chapter %s, Verse %s. Include Sanskrit, transliteration, translation, and reflection.", chapter, verse)
	case IntentConcept:
		instruction += "Explain the concept with Bhagavad Gita context and modern meaning."
	case IntentEmotional:
		instruction += "Offer compassionate spiritual guidance and reassurance."
	case IntentGreeting:
		instruction += "Give a gentle greeting response as Krishna would."
	default:
		instruction += "Answer with wisdom and a final reflection from the Gita."
	}

	return fmt.Sprintf("%s\n\nSeeker asks: %q", instruction, question)
}
