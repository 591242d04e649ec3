package main

import (
	"fmt"
	"io"
	"strings"

	word1e "github.com/antonijn/word1e/lib"
)

// colorMode mirrors bot.c's --color=auto|yes|no tri-state.
type colorMode int

const (
	colorAuto colorMode = iota
	colorYes
	colorNo
)

func parseColorMode(s string) (colorMode, error) {
	switch s {
	case "auto":
		return colorAuto, nil
	case "yes":
		return colorYes, nil
	case "no":
		return colorNo, nil
	default:
		return colorAuto, fmt.Errorf("invalid --color value %q (want auto|yes|no)", s)
	}
}

// resolve turns auto into yes/no based on whether stdout looks like a
// terminal.
func (m colorMode) resolve(isTerminal bool) colorMode {
	if m != colorAuto {
		return m
	}
	if isTerminal {
		return colorYes
	}
	return colorNo
}

const (
	ansiGreen  = "\x1b[1;30m\x1b[42m"
	ansiYellow = "\x1b[1;30m\x1b[43m"
	ansiDark   = "\x1b[1m"
	ansiReset  = "\x1b[0m"
)

var emoji = map[word1e.Color]string{
	word1e.Green:  "\U0001F7E9",
	word1e.Yellow: "\U0001F7E8",
	word1e.Dark:   "\U00002B1B",
}

// printPlaying echoes the guess just played, optionally colorized, the
// way bot.c's print_playing does. Suppressed entirely in secret mode.
func printPlaying(w io.Writer, alphabet *word1e.Alphabet, guess word1e.Word, colors word1e.Colors, mode colorMode, secret bool) {
	if secret {
		return
	}

	fmt.Fprint(w, "Playing ")
	for i := 0; i < 5; i++ {
		glyph := alphabet.LetterGlyph(guess.Letters[i])
		if mode == colorYes {
			switch colors[i] {
			case word1e.Green:
				fmt.Fprint(w, ansiGreen)
			case word1e.Yellow:
				fmt.Fprint(w, ansiYellow)
			case word1e.Dark:
				fmt.Fprint(w, ansiDark)
			}
		}
		fmt.Fprint(w, glyph)
		if mode == colorYes {
			fmt.Fprint(w, ansiReset)
		}
	}

	if mode == colorNo {
		printEmojis(w, colors, secret)
	}
	fmt.Fprintln(w)
}

// printEmojis renders the colored-square summary bot.c shows when
// color escapes are disabled but a terminal/pipe still wants a
// human-legible pattern.
func printEmojis(w io.Writer, colors word1e.Colors, secret bool) {
	if secret {
		return
	}
	fmt.Fprint(w, " ")
	for _, c := range colors {
		fmt.Fprint(w, emoji[c])
	}
}

// printGuesses renders a tied best-guess list: "SLATE/CRANE... +3 (score 42.1%, exp 123.45)".
func printGuesses(w io.Writer, alphabet *word1e.Alphabet, top []word1e.Word, count int, score float64, optsLeft int) {
	max := len(top)
	for i, word := range top {
		fmt.Fprint(w, alphabet.SprintWord(word))
		if i == max-1 {
			if count > max {
				fmt.Fprintf(w, "... +%d", count-max)
			}
		} else {
			fmt.Fprint(w, "/")
		}
	}
	expOpts := float64(optsLeft) * (1.0 - score)
	fmt.Fprintf(w, " (score %.1f%%, exp %.2f)\n", score*100.0, expOpts)
}

// printOpts prints the live candidate set in a simple fixed-width grid,
// truncating past a display cap the way bot.c's print_opts does.
func printOpts(w io.Writer, alphabet *word1e.Alphabet, words []word1e.Word, cols, cap int) {
	n := len(words)
	shown := n
	if shown > cap {
		shown = cap
	}
	var sb strings.Builder
	for i := 0; i < shown; i++ {
		if i%cols == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(' ')
		sb.WriteString(alphabet.SprintWord(words[i]))
		if i%cols == cols-1 || i == shown-1 {
			sb.WriteByte('\n')
		}
	}
	fmt.Fprint(w, sb.String())
	if n > cap {
		fmt.Fprintln(w, " ...")
	}
}
