// Command solve plays (or coaches) a round of word1e: given a
// precomputed index, it either drives a bot against a known or random
// target, lets a user play while reporting the best available guess
// each round ("coach mode"), replays a fixed list of given guesses, or
// prompts an external judge for puzzle-mode feedback.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	word1e "github.com/antonijn/word1e/lib"
)

const defaultIndexPath = "words-index.txt"

type options struct {
	colorStr  string
	coach     bool
	indexPath string
	random    bool
	secret    bool
	verbosity int
	quiet     int
	extended  bool
	given     string
	list      bool
	jsonOut   bool
	allowSlur bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "solve [WORD]",
		Short: "Play or coach a round of word1e against a known or puzzle target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.colorStr, "color", "auto", "auto|yes|no: colorize the played guess")
	flags.BoolVarP(&opts.coach, "coach", "c", false, "coach mode: read guesses from stdin, report the best alternative")
	flags.StringVarP(&opts.indexPath, "index", "i", "", "path to the precomputed index file (default $WORDSMITH_INDEX or "+defaultIndexPath+")")
	flags.BoolVarP(&opts.random, "random", "r", false, "pick a random target from the dictionary")
	flags.BoolVarP(&opts.secret, "secret", "s", false, "suppress the played-guess echo line")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity")
	flags.CountVarP(&opts.quiet, "quiet", "q", "decrease verbosity")
	flags.BoolVarP(&opts.extended, "extended", "x", false, "randomize the bot's first guess among the top 100 dictionary entries")
	flags.StringVarP(&opts.given, "given", "g", "", "colon-separated list of pre-planned guesses, e.g. crane:slate")
	flags.BoolVarP(&opts.list, "list", "l", false, "print the dictionary's word list and exit")
	flags.BoolVarP(&opts.jsonOut, "json", "j", false, "emit a JSON report per round instead of text")
	flags.BoolVar(&opts.allowSlur, "allow-slurs", false, "do not suppress FlagSlur words from suggestions")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbosity, quiet int) *zap.SugaredLogger {
	level := verbosity - quiet
	var cfg zap.Config
	if level > 0 {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		// Logging setup itself failed; fall back to a no-op logger
		// rather than crash a game loop over diagnostics.
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	log := newLogger(opts.verbosity, opts.quiet)
	defer log.Sync() //nolint:errcheck

	mode, err := parseColorMode(opts.colorStr)
	if err != nil {
		return err
	}

	indexPath := opts.indexPath
	if indexPath == "" {
		if env := os.Getenv("WORDSMITH_INDEX"); env != "" {
			indexPath = env
		} else {
			indexPath = defaultIndexPath
		}
	}

	f, err := os.Open(indexPath)
	if err != nil {
		log.Fatalw("cannot open index", "path", indexPath, "error", err)
	}
	defer f.Close()

	alphabet, dict, err := word1e.ReadIndex(f)
	if err != nil {
		log.Fatalw("malformed index", "path", indexPath, "error", err)
	}

	if opts.list {
		for _, w := range dict.Words {
			fmt.Println(alphabet.SprintWord(w))
		}
		return nil
	}

	live := word1e.NewCandidates(dict.TargetWords())

	target, hasTarget, err := resolveTarget(alphabet, dict, args, opts.random)
	if err != nil {
		return err
	}

	var oracle word1e.Oracle
	if hasTarget {
		oracle = word1e.FixedTargetOracle{Target: target}
	} else {
		oracle = &word1e.PuzzleOracle{
			In: bufio.NewReader(os.Stdin),
			Prompt: func(guess word1e.Word) {
				fmt.Printf("Play %s.\n? ", alphabet.SprintWord(guess))
			},
		}
	}

	bestOpts := word1e.BestGuessOptions{MaxOut: 16, AllowSlurs: opts.allowSlur}

	var guesser word1e.Guesser
	switch {
	case opts.given != "":
		words, err := parseGivenGuesses(alphabet, opts.given)
		if err != nil {
			return err
		}
		guesser = &word1e.GivenGuesser{Guesses: words, Opts: bestOpts}
	case opts.coach:
		guesser = word1e.NewUserGuesser(alphabet, bestOpts, os.Stdin)
	default:
		b := word1e.NewBotGuesser(bestOpts)
		b.ExtendedInitial = opts.extended
		b.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
		guesser = b
	}

	resolved := mode.resolve(isTerminal(os.Stdout))

	var report word1e.SessionReport

	session := &word1e.Session{
		Dict:    dict,
		Live:    live,
		Guesser: guesser,
		Oracle:  oracle,
		OnRound: func(r word1e.RoundResult) {
			if opts.jsonOut {
				report = append(report, word1e.NewRoundReport(alphabet, r, live))
				return
			}

			if hasTarget {
				printPlaying(os.Stdout, alphabet, r.Guess.Guess, r.Colors, resolved, opts.secret)
			} else if resolved == colorNo {
				printEmojis(os.Stdout, r.Colors, opts.secret)
				fmt.Println()
			}

			if opts.verbosity-opts.quiet >= 0 {
				fmt.Printf("options left: %d\n", live.Len())
				printOpts(os.Stdout, alphabet, live.Words(), 4, 20)
			}
			if len(r.Best) > 0 {
				fmt.Print("best ")
				printGuesses(os.Stdout, alphabet, limitWords(r.Best), r.NumBest, r.Best[0].Score, live.Len())
			}
		},
	}

	success, rounds := session.Run()

	if opts.jsonOut {
		data, err := report.Marshal()
		if err != nil {
			log.Errorw("marshal report", "error", err)
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println()
	if success {
		fmt.Printf("Got it in %d guesses.\n", rounds)
	} else {
		fmt.Printf("Didn't get it in %d guesses.\n", rounds)
	}
	return nil
}

func limitWords(reports []word1e.GuessReport) []word1e.Word {
	out := make([]word1e.Word, len(reports))
	for i, r := range reports {
		out[i] = r.Guess
	}
	return out
}

func resolveTarget(alphabet *word1e.Alphabet, dict *word1e.Dictionary, args []string, random bool) (word1e.Word, bool, error) {
	if len(args) == 1 {
		w, err := alphabet.ScanWordString(args[0])
		if err != nil {
			return word1e.Word{}, false, fmt.Errorf("invalid target word: %w", err)
		}
		return w, true, nil
	}
	if random {
		targets := dict.TargetWords()
		if len(targets) == 0 {
			return word1e.Word{}, false, fmt.Errorf("empty dictionary")
		}
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		return targets[r.Intn(len(targets))], true, nil
	}
	return word1e.Word{}, false, nil
}

// isTerminal reports whether f is attached to a character device (a
// terminal), the dependency-free check standing in for the C
// implementation's isatty(3) calls.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func parseGivenGuesses(alphabet *word1e.Alphabet, spec string) ([]word1e.Word, error) {
	parts := strings.Split(spec, ":")
	out := make([]word1e.Word, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		w, err := alphabet.ScanWordString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid given guess %q: %w", p, err)
		}
		out = append(out, w)
	}
	return out, nil
}
