// porcus is a line-oriented filter: it reads text from standard input,
// rewrites every Latin-script word into pig latin, and writes the result to
// standard output. Everything else (whitespace, punctuation, digits, other
// scripts) passes through verbatim.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/LeopoldTal/porcus/internal/logger"
	"github.com/LeopoldTal/porcus/internal/piglatin"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	logger.Init()

	fs := ff.NewFlagSet("porcus")
	var (
		consonantSuffix = fs.StringLong("consonant", piglatin.DefaultConsonantSuffix, "suffix for words starting with a consonant")
		vowelSuffix     = fs.StringLong("vowel", piglatin.DefaultVowelSuffix, "suffix for words starting with a vowel")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("PORCUS")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	transformer := piglatin.New(*consonantSuffix, *vowelSuffix)
	slog.Debug("transformer configured", "consonant", *consonantSuffix, "vowel", *vowelSuffix)

	return run(transformer, os.Stdin, os.Stdout)
}

// run copies r to w line by line, transforming each line. Line delimiters
// are part of the text and pass through the transform unchanged, so output
// framing always matches input framing.
func run(transformer piglatin.Transformer, r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	for {
		line, err := in.ReadString('\n')
		if line != "" {
			if _, werr := out.WriteString(transformer.Transform(line)); werr != nil {
				return fmt.Errorf("writing output: %w", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
