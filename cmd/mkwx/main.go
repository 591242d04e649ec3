// Command mkwx builds a word1e index file: it scores every word in a
// raw word list against the empty-knowledge state, flags the
// target-eligible and slur subsets, sorts by descending score, and
// writes the §6 v1 index format consumed by cmd/solve.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	word1e "github.com/antonijn/word1e/lib"
)

type options struct {
	outPath    string
	targetPath string
	slurPath   string
	verbosity  int
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mkwx [PATH]",
		Short: "Build a word1e index file from a raw word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.outPath, "output", "o", "", "output index path (default stdout)")
	flags.StringVar(&opts.targetPath, "target", "", "path to file of possible target words")
	flags.StringVar(&opts.slurPath, "slur", "", "path to file of slurs")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase verbosity (progress on stderr)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(wordListPath string, opts *options) error {
	var cfg zap.Config
	if opts.verbosity > 0 {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	log := logger.Sugar()
	defer log.Sync() //nolint:errcheck

	alphabet, err := word1e.NewAlphabet(nil)
	if err != nil {
		return err
	}

	words, err := loadWordList(alphabet, wordListPath, log)
	if err != nil {
		return err
	}

	var targets, slurs []word1e.Word
	if opts.targetPath != "" {
		targets, err = loadWordList(alphabet, opts.targetPath, log)
		if err != nil {
			return err
		}
	}
	if opts.slurPath != "" {
		slurs, err = loadWordList(alphabet, opts.slurPath, log)
		if err != nil {
			return err
		}
	}

	total := len(words)
	buildOpts := word1e.BuildIndexOptions{
		Targets: targets,
		Slurs:   slurs,
	}
	if opts.verbosity > 0 {
		buildOpts.Progress = func(done, _ int) {
			if done%256 == 0 || done == total {
				fmt.Fprintf(os.Stderr, "scoring... [%5d / %5d]        \r", done, total)
			}
		}
	}

	log.Infow("scoring dictionary", "words", total)
	dict := word1e.BuildIndex(words, buildOpts)
	if opts.verbosity > 0 {
		fmt.Fprintln(os.Stderr)
	}

	out := os.Stdout
	if opts.outPath != "" {
		f, err := os.Create(opts.outPath)
		if err != nil {
			log.Fatalw("cannot create output file", "path", opts.outPath, "error", err)
		}
		defer f.Close()
		out = f
	}

	if err := word1e.WriteIndex(out, alphabet, dict); err != nil {
		log.Fatalw("writing index failed", "error", err)
	}

	log.Infow("index written", "words", total, "output", opts.outPath)
	return nil
}

func loadWordList(alphabet *word1e.Alphabet, path string, log *zap.SugaredLogger) ([]word1e.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalw("cannot open word list", "path", path, "error", err)
	}
	defer f.Close()

	words, err := word1e.LoadWordList(alphabet, f)
	if err != nil {
		log.Fatalw("malformed word list", "path", path, "error", err)
	}
	return words, nil
}
