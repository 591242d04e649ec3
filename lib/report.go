package word1e

// spec.md §1 names "the JSON serialiser" as a thin, deliberately
// out-of-scope external collaborator, so this uses only encoding/json
// rather than wiring in an ecosystem JSON library (see DESIGN.md).
import "encoding/json"

// jsonWord renders a Word the way the report expects: upper-case
// letters, digraphs re-expanded, no '-' disambiguator (the report
// format mirrors the original's raw five-character `word->letters`
// buffer, not the printed round-trippable form).
func jsonWord(alphabet *Alphabet, w Word) string {
	out := ""
	for _, l := range w.Letters {
		out += alphabet.LetterGlyph(l)
	}
	return out
}

// reportGuess is the {word, score} object used for both "user" and
// entries of "best".
type reportGuess struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// RoundReport is the per-round JSON object described in spec.md §6:
// the user's guess and its score, the resulting colors (B/G/Y), an
// optional best-guess list, the words still in play, and how many the
// round eliminated.
type RoundReport struct {
	User        reportGuess   `json:"user"`
	Colors      string        `json:"colors"`
	Best        []reportGuess `json:"best,omitempty"`
	OptionsLeft []string      `json:"optionsLeft"`
	Eliminated  int           `json:"eliminated"`
}

// colorString renders Colors as five characters from {B, G, Y}, the
// convention spec.md §6 specifies for the JSON report (distinct from
// the puzzle-prompt convention of '.'/'-'/'+').
func colorString(c Colors) string {
	var buf [5]byte
	for i, col := range c {
		switch col {
		case Dark:
			buf[i] = 'B'
		case Green:
			buf[i] = 'G'
		case Yellow:
			buf[i] = 'Y'
		}
	}
	return string(buf[:])
}

// NewRoundReport builds a RoundReport from a completed round. live is
// the candidate set after the round's Filter has already run, matching
// the C implementation's ordering (optionsLeft reflects post-filter
// state).
func NewRoundReport(alphabet *Alphabet, r RoundResult, live *Candidates) RoundReport {
	rep := RoundReport{
		User:        reportGuess{Word: jsonWord(alphabet, r.Guess.Guess), Score: r.Guess.Score},
		Colors:      colorString(r.Colors),
		Eliminated:  r.Eliminated,
		OptionsLeft: make([]string, live.Len()),
	}
	for i, w := range live.Words() {
		rep.OptionsLeft[i] = jsonWord(alphabet, w)
	}
	if r.Best != nil {
		rep.Best = make([]reportGuess, len(r.Best))
		for i, g := range r.Best {
			rep.Best[i] = reportGuess{Word: jsonWord(alphabet, g.Guess), Score: g.Score}
		}
	}
	return rep
}

// SessionReport is the full ordered list of per-round reports for a
// session, the top-level JSON value bot.c's `-j` mode writes.
type SessionReport []RoundReport

// Marshal renders the session report to its JSON form.
func (s SessionReport) Marshal() ([]byte, error) {
	return json.Marshal([]RoundReport(s))
}
