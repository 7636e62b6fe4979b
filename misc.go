package bintext

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Config is the full parameter set of one conversion. It must not change once
// handed to Convert.
type Config struct {
	Format     Format
	Endian     Endian
	Depth      int
	Words      int
	Fill       Fill
	LineEnding LineEnding
	// Truncate stops the conversion once Words lines are written, leaving
	// the rest of the input unread.
	Truncate bool
	// Hash selects the digest of the consumed input; zero disables it.
	Hash Hash
}

// NewConfig returns the defaults of every optional parameter. The output
// format has no default and must be set by the caller.
func NewConfig() *Config {
	return &Config{
		Endian:     DefaultEndian,
		Depth:      DefaultDepth,
		Words:      DefaultWords,
		Fill:       DefaultFill,
		LineEnding: DefaultLineEnding,
	}
}

type PrintFunc func(*Config) error

func NewDefaultPrintFunc(w io.Writer) PrintFunc {
	return func(cfg *Config) (err error) {
		hash := "-"
		if cfg.Hash != 0 {
			hash = HashNames[cfg.Hash]
		}
		rows := [...][2]string{
			{"FORMAT", FormatNames[cfg.Format]},
			{"ENDIAN", EndianNames[cfg.Endian]},
			{"DEPTH", strconv.Itoa(cfg.Depth)},
			{"WORDS", strconv.Itoa(cfg.Words)},
			{"FILL", FillNames[cfg.Fill]},
			{"LINE", LineEndingNames[cfg.LineEnding]},
			{"TRUNC", strconv.FormatBool(cfg.Truncate)},
			{"HASH", hash},
		}
		for _, row := range rows {
			if _, err = fmt.Fprintf(w, "%-8s%s\n", row[0], row[1]); err != nil {
				return
			}
		}
		return
	}
}

func checkArgs(in io.Reader, out io.Writer, cfg *Config) error {
	if in == nil || out == nil || cfg == nil {
		return ErrInvArg
	}
	return nil
}

func CheckDepth(depth int) error {
	if depth <= 0 || depth%8 != 0 {
		return ErrDepth
	}
	return nil
}

// ParseDepth accepts a decimal bit depth. Anything that is not a positive
// multiple of 8, including text, yields ErrDepth.
func ParseDepth(s string) (int, error) {
	depth, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrDepth
	}
	return depth, CheckDepth(depth)
}

func ParseWords(s string) (int, error) {
	words, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || words < 0 {
		return 0, ErrWords
	}
	return words, nil
}

func ValidateConfig(cfg *Config) (err error) {
	if cfg == nil {
		return ErrInvArg
	}
	if err = checkOption(cfg.Format, formats[:], ErrFormat); err != nil {
		return
	}
	if err = checkOption(cfg.Endian, endians[:], ErrEndian); err != nil {
		return
	}
	if err = CheckDepth(cfg.Depth); err != nil {
		return
	}
	if cfg.Words < 0 {
		return ErrWords
	}
	if err = checkOption(cfg.Fill, fills[:], ErrFill); err != nil {
		return
	}
	if err = checkOption(cfg.LineEnding, lineEndings[:], ErrLineEnding); err != nil {
		return
	}
	if cfg.Hash != 0 {
		err = checkOption(cfg.Hash, hashes[:], ErrHash)
	}
	return
}

func checkOption[T comparable](v T, values []T, e error) error {
	for _, value := range values {
		if value == v {
			return nil
		}
	}
	return e
}

func parseOption[T comparable](s string, values []T, names map[T]string, e error) (T, error) {
	for _, value := range values {
		if names[value] == s {
			return value, nil
		}
	}
	var zero T
	return zero, e
}

func getOptionString[T comparable](values []T, names map[T]string) string {
	d := make([]string, len(values))
	for i, value := range values {
		d[i] = names[value]
	}
	return strings.Join(d, ", ")
}
