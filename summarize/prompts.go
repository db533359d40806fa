package summarize

// Level selects how detailed a summary should be. At most one summary
// is cached per level per transcript.
type Level string

const (
	LevelShort  Level = "short"
	LevelMedium Level = "medium"
	LevelLong   Level = "long"
)

// ParseLevel validates a level supplied by a caller.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelShort, LevelMedium, LevelLong:
		return Level(s), nil
	default:
		return "", ErrInvalidLevel
	}
}

// systemPrompt frames every summarization request.
const systemPrompt = "You are a YouTube video transcript summarization expert. " +
	"Summarize the given transcript faithfully, without inventing content."

// levelPrompts maps a level to the instruction prepended to the
// transcript.
var levelPrompts = map[Level]string{
	LevelShort: "Summarize this transcript very briefly. " +
		"Give only the main points in 2-3 sentences.",
	LevelMedium: "Summarize this transcript at medium length. " +
		"Produce a balanced summary covering the main topics and important details.",
	LevelLong: "Summarize this transcript in detail. " +
		"Produce a comprehensive summary covering all important points, subtopics and details.",
}

// levelMaxTokens bounds the completion size per level.
var levelMaxTokens = map[Level]int{
	LevelShort:  200,
	LevelMedium: 500,
	LevelLong:   1000,
}
