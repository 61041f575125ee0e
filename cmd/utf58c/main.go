// utf58c converts between UTF-8 text and UTF-58 streams.
//
// By default it reads UTF-8 text and writes the UTF-58 encoding. With
// --decode it goes the other way. --hex switches the UTF-58 side to hex
// text and --listing to the one-character-per-line listing format.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/dadrian/utf58"
	"github.com/dadrian/utf58/textrep"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts := defaultOptions()
	var configPath string
	var verbose bool

	flagSet := pflag.NewFlagSet("utf58c", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.In, "in", opts.In, "input file (or - for stdin)")
	flagSet.StringVar(&opts.Out, "out", opts.Out, "output file (or - for stdout)")
	flagSet.BoolVarP(&opts.Decode, "decode", "d", false, "decode UTF-58 input to UTF-8 text")
	flagSet.BoolVar(&opts.Hex, "hex", false, "read or write the UTF-58 side as hex")
	flagSet.BoolVar(&opts.Listing, "listing", false, "read or write the UTF-58 side as a listing")
	flagSet.BoolVar(&opts.Validate, "validate", false, "validate only; convert without writing output")
	flagSet.BoolVar(&opts.Info, "info", false, "print a character summary of the UTF-58 stream")
	flagSet.StringVar(&configPath, "config", "", "TOML config file")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	logger := newLogger(stderr, opts.LogLevel)
	if err := flagSet.Parse(args); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			logger.Error().Err(err).Msg("bad arguments")
		}
		return err
	}

	if configPath != "" {
		fromFile, err := loadConfigFile(configPath, defaultOptions())
		if err != nil {
			logger.Error().Err(err).Str("path", configPath).Msg("failed to load config")
			return err
		}
		opts = mergeFlags(flagSet, opts, fromFile)
	}
	if verbose {
		opts.LogLevel = zerolog.DebugLevel
	}
	logger = newLogger(stderr, opts.LogLevel)
	if configPath != "" {
		logger.Debug().Str("path", configPath).Msg("loaded config")
	}

	if opts.Hex && opts.Listing {
		err := errors.New("--hex and --listing are mutually exclusive")
		logger.Error().Err(err).Msg("bad arguments")
		return err
	}

	if err := convert(opts, stdin, stdout, logger); err != nil {
		logger.Error().Err(err).Msg("conversion failed")
		return err
	}
	return nil
}

// mergeFlags starts from the config file values and keeps every flag that
// was set explicitly on the command line.
func mergeFlags(flagSet *pflag.FlagSet, fromFlags, fromFile options) options {
	out := fromFile
	out.In, out.Out = fromFlags.In, fromFlags.Out
	out.Validate, out.Info = fromFlags.Validate, fromFlags.Info
	if flagSet.Changed("decode") {
		out.Decode = fromFlags.Decode
	}
	if flagSet.Changed("hex") {
		out.Hex = fromFlags.Hex
	}
	if flagSet.Changed("listing") {
		out.Listing = fromFlags.Listing
	}
	return out
}

func convert(opts options, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	in, err := readInput(opts.In, stdin)
	if err != nil {
		return err
	}
	logger.Debug().Str("in", opts.In).Int("bytes", len(in)).Bool("decode", opts.Decode).Msg("read input")

	var stream, out []byte
	if opts.Decode {
		stream, err = unwrapStream(opts, in)
		if err != nil {
			return err
		}
		text, err := utf58.Unmarshal(stream)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		out = []byte(text)
	} else {
		stream, err = utf58.Marshal(string(in))
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		out, err = wrapStream(opts, stream)
		if err != nil {
			return err
		}
	}

	if opts.Info {
		return printInfo(stdout, stream)
	}
	if opts.Validate {
		logger.Info().Int("bytes", len(stream)).Msg("valid")
		return nil
	}
	return writeOutput(opts.Out, stdout, out)
}

// wrapStream renders stream in the output form opts asks for.
func wrapStream(opts options, stream []byte) ([]byte, error) {
	switch {
	case opts.Hex:
		return []byte(hex.EncodeToString(stream) + "\n"), nil
	case opts.Listing:
		listing, err := textrep.Format(stream)
		if err != nil {
			return nil, fmt.Errorf("write listing: %w", err)
		}
		return []byte(listing), nil
	default:
		return stream, nil
	}
}

// unwrapStream returns the binary UTF-58 stream carried by in.
func unwrapStream(opts options, in []byte) ([]byte, error) {
	switch {
	case opts.Hex:
		b, err := hex.DecodeString(strings.Join(strings.Fields(string(in)), ""))
		if err != nil {
			return nil, fmt.Errorf("read hex: %w", err)
		}
		return b, nil
	case opts.Listing:
		b, err := textrep.EncodeBytes(in)
		if err != nil {
			return nil, fmt.Errorf("read listing: %w", err)
		}
		return b, nil
	default:
		return in, nil
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return b, nil
}

func writeOutput(path string, stdout io.Writer, b []byte) error {
	if path == "-" {
		_, err := stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// printInfo writes a per-tier character summary of stream.
func printInfo(w io.Writer, stream []byte) error {
	var counts [utf58.MaxPayload + 1]int
	var letters, markers, total int
	dec := utf58.NewDecoder(bytes.NewReader(stream))
	for {
		off := dec.Offset()
		_, _, err := dec.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		total++
		t := utf58.NewTag(stream[off])
		switch t.Kind() {
		case utf58.KindMarker:
			markers++
		case utf58.KindLetter:
			letters++
		default:
			counts[t.PayloadLen()]++
		}
	}
	fmt.Fprintf(w, "Bytes: %d\n", len(stream))
	fmt.Fprintf(w, "Characters: %d\n", total)
	fmt.Fprintf(w, "Letters: %d\n", letters)
	fmt.Fprintf(w, "Markers: %d\n", markers)
	for n := 1; n <= utf58.MaxPayload; n++ {
		fmt.Fprintf(w, "Escape%d: %d\n", n, counts[n])
	}
	return nil
}
