package assessment

import "fmt"

// PromptSpec is one resolved entry of the prompt selection table: the
// instruction pair sent to the generator and how many items to expect.
type PromptSpec struct {
	System string
	User   string
	Count  int
}

// PlacementCount is the fixed placement test length.
const PlacementCount = 10

// SelectPrompt resolves the instruction pair for an assessment.
// level is the CEFR label the set targets; phase is ignored for
// placement. The learner base language is Spanish: task statements may
// be phrased in Spanish, expected answers are always English.
func SelectPrompt(typ Type, level string, phase Phase) PromptSpec {
	switch typ {
	case TypePlacement:
		return PromptSpec{
			System: "You are a CEFR language evaluator. Create a 10-question placement " +
				"test with an even mix of A1, B1 and C1 complexity. " +
				"The response MUST be a JSON array.",
			User: "Generate the 10-question test. ALL questions must be short-answer " +
				"(type 'write'). Phrase each task in SPANISH (a translation or an " +
				"instruction); the expected 'correct_answer' must ALWAYS be in ENGLISH.",
			Count: PlacementCount,
		}

	case TypeWriting:
		if phase == 3 {
			return PromptSpec{
				System: fmt.Sprintf("You are a %s-level writing exercise generator focused on "+
					"applied language and complex structures. Create a challenge set of "+
					"7 WRITING questions. The response MUST be a JSON array.", level),
				User: fmt.Sprintf("Generate 7 %s exercises: 3 free-writing prompts (a short "+
					"opinion or situation response), 2 sentence transformations using a "+
					"named complex structure (passive voice, conditionals), and 2 reverse "+
					"translations (English to Spanish) to check comprehension. Expected "+
					"'correct_answer' values must ALWAYS be in ENGLISH.", level),
				Count: 7,
			}
		}
		return PromptSpec{
			System: fmt.Sprintf("You are a CEFR writing exercise generator. Create a set of "+
				"7 WRITING questions for level %s, phase %d. "+
				"The response MUST be a JSON array.", level, phase),
			User: "Generate 7 exercises: 3 simple translations (Spanish to English, " +
				"vocabulary focused), 3 fill-in-the-blank items requiring the correct " +
				"verb tense, and 1 short answer. Expected 'correct_answer' values must " +
				"ALWAYS be in ENGLISH.",
			Count: 7,
		}

	case TypeSpeaking:
		var system, user string
		switch phase {
		case 3:
			system = fmt.Sprintf("You are a %s-level SPEAKING exercise generator. Create 7 "+
				"short dialogues or paragraphs (3-4 sentences) for fluency practice. "+
				"The response MUST be a JSON array.", level)
			user = fmt.Sprintf("Generate 7 SPEAKING exercises for %s. The learner reads the "+
				"full text aloud: 'question' is the dialogue or paragraph in ENGLISH and "+
				"'correct_answer' is the same text. Use type 'write'.", level)
		case 2:
			system = fmt.Sprintf("You are a %s-level SPEAKING exercise generator. Create 7 "+
				"practice sentences built on specific grammar structures (conditionals, "+
				"passive voice) for fluency and intonation. "+
				"The response MUST be a JSON array.", level)
			user = fmt.Sprintf("Generate 7 complete ENGLISH sentences for %s. 'question' is "+
				"the sentence and 'correct_answer' is the same sentence. "+
				"Use type 'write'.", level)
		default:
			system = fmt.Sprintf("You are a %s-level SPEAKING exercise generator. Create 7 "+
				"very short, simple phrases focused on common words and rhythm. "+
				"The response MUST be a JSON array.", level)
			user = fmt.Sprintf("Generate 7 simple ENGLISH phrases for %s. 'question' is the "+
				"phrase and 'correct_answer' is the same phrase. Use type 'write'.", level)
		}
		return PromptSpec{System: system, User: user, Count: 7}

	case TypeListening:
		if phase == 3 {
			return PromptSpec{
				System: fmt.Sprintf("You are a LISTENING test generator. Create a 7-entry "+
					"comprehension exercise for level %s around a single story of roughly "+
					"150 words. The response MUST be a JSON array.", level),
				User: fmt.Sprintf("Generate a short ENGLISH story suited to level %s. Put the "+
					"full story text in the 'question' field of the FIRST array entry "+
					"(type 'mc', options ['Continue']). Then generate 6 multiple-choice "+
					"questions about the story: 2 detail, 2 inference and 2 vocabulary.", level),
				Count: 7,
			}
		}
		return PromptSpec{
			System: "You are a LISTENING test generator. Create 7 short audio-comprehension " +
				"exercises, each a short phrase or dialogue plus a question. " +
				"The response MUST be a JSON array.",
			User: fmt.Sprintf("Generate 7 multiple-choice ('mc') questions for level %s. "+
				"'question' is the short ENGLISH phrase or dialogue the learner hears; "+
				"the options are SPANISH sentences that check comprehension.", level),
			Count: 7,
		}

	case TypeGrammar:
		if phase == 3 {
			return PromptSpec{
				System: fmt.Sprintf("You are a %s-level grammar expert. Create a 7-question "+
					"test focused on diagnosing and correcting complex grammar errors. "+
					"The response MUST be a JSON array.", level),
				User: "Generate 7 questions: 4 error corrections (give an incorrect sentence " +
					"and ask for the correct form, type 'write') and 3 multiple-choice " +
					"questions on connectors and advanced clauses. Expected " +
					"'correct_answer' values must ALWAYS be in ENGLISH.",
				Count: 7,
			}
		}
		return PromptSpec{
			System: fmt.Sprintf("You are a CEFR grammar evaluator. Create a concise "+
				"7-question GRAMMAR test for level %s, phase %d. "+
				"The response MUST be a JSON array.", level, phase),
			User: "Generate a 7-question test: 5 multiple choice (basic verb tenses, " +
				"agreement) and 2 fill-in-the-blank (type 'write'). Expected answers " +
				"must be in ENGLISH.",
			Count: 7,
		}

	default:
		// Vocabulary and any other skill get the short generic set.
		return PromptSpec{
			System: fmt.Sprintf("You are an English assessment generator (CEFR). Create a "+
				"concise 5-question test on the %q skill for level %s. "+
				"The response MUST be a JSON array.", typ, level),
			User: "Generate a 5-question test mixing multiple-choice and short-answer " +
				"('write') questions. Expected answers must be in ENGLISH.",
			Count: 5,
		}
	}
}

// GradingPrompt builds the instruction pair for the free-text batch
// grading call. payload is the JSON-serialized list of answered items.
func GradingPrompt(payload string) (system, user string) {
	system = "You are an English language evaluator following the CEFR framework. " +
		"Evaluate each user answer ('user_answer') against its question ('question') " +
		"and the expected answer ('correct_answer'). Mark it correct (true) or " +
		"incorrect (false) and give concise feedback that is specific about grammar " +
		"(verb tense, agreement, structure, preposition use) and coherence. " +
		"Respond with a JSON array keyed by the same 'id'."
	user = "Evaluate these answers: " + payload
	return system, user
}
