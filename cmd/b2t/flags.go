package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jamesliu96/bintext"
	"github.com/jamesliu96/bintext/profile"
	"github.com/spf13/pflag"
)

// ExitError carries the process exit code of a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

type options struct {
	input, output string
	cfg           *bintext.Config

	printHash bool
	progress  bool
	verbose   bool
	version   bool
}

// parseFlags turns args into a validated configuration. It never touches the
// input or output files, so every rejection happens before any file i/o.
func parseFlags(args []string, output io.Writer) (*options, error) {
	fs := pflag.NewFlagSet(app, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(output, `%s - convert a binary file to text, one word per line

usage: %s -b <binary> -t <text> -x bin|hex [option]...
options:
`, app, app)
		fs.PrintDefaults()
	}

	var (
		opts     options
		format   string
		endian   string
		depth    string
		words    int
		fill     string
		line     string
		hash     string
		trunc    bool
		prof     string
		profName string
	)
	fs.StringVarP(&opts.input, "binary", "b", "", "input binary `file`")
	fs.StringVarP(&opts.output, "text", "t", "", "output text `file`")
	fs.StringVarP(&format, "x", "x", "", fmt.Sprintf("output data format (%s)", bintext.FormatString))
	fs.StringVarP(&endian, "endian", "e", bintext.EndianNames[bintext.DefaultEndian], fmt.Sprintf("endian in input file (%s)", bintext.EndianString))
	fs.StringVarP(&depth, "depth", "d", fmt.Sprint(bintext.DefaultDepth), "input data bit `depth`, multiple of 8")
	fs.IntVarP(&words, "words", "w", bintext.DefaultWords, "number of `lines` in output file")
	fs.StringVarP(&fill, "fill", "f", bintext.FillNames[bintext.DefaultFill], fmt.Sprintf("fill missing data with 0xFF (%s)", bintext.FillString))
	fs.StringVarP(&line, "line", "l", bintext.LineEndingNames[bintext.DefaultLineEnding], fmt.Sprintf("line ending (%s)", bintext.LineEndingString))
	fs.BoolVar(&trunc, "truncate", false, "stop after --words lines even if input remains")
	fs.StringVarP(&hash, "hash", "H", bintext.HashNames[bintext.SHA_256], fmt.Sprintf("input digest algorithm (%s)", bintext.HashString))
	fs.BoolVarP(&opts.printHash, "digest", "X", false, "print input digest")
	fs.StringVarP(&prof, "profile", "p", "", "profile `file` (HCL)")
	fs.StringVarP(&profName, "name", "n", "", "profile `name` (default: the only profile in the file)")
	fs.BoolVarP(&opts.progress, "progress", "P", false, "progress")
	fs.BoolVarP(&opts.verbose, "verbose", "V", false, "verbose")
	fs.BoolVarP(&opts.version, "version", "v", false, "version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, err
		}
		return nil, usageError(err)
	}
	if opts.version {
		return &opts, nil
	}
	if fs.NArg() > 0 {
		return nil, usageError(fmt.Errorf("unexpected argument %q", fs.Arg(0)))
	}

	cfg := bintext.NewConfig()
	if prof != "" {
		p, err := loadProfile(prof, profName)
		if err != nil {
			return nil, usageError(err)
		}
		if err := p.Apply(cfg); err != nil {
			return nil, usageError(err)
		}
	} else if profName != "" {
		return nil, usageError(errors.New("--name requires --profile"))
	}

	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Changed(name) {
			err = apply()
		}
	}
	set("x", func() (e error) { cfg.Format, e = bintext.ParseFormat(format); return })
	set("endian", func() (e error) { cfg.Endian, e = bintext.ParseEndian(endian); return })
	set("depth", func() (e error) { cfg.Depth, e = bintext.ParseDepth(depth); return })
	set("words", func() error {
		if words < 0 {
			return bintext.ErrWords
		}
		cfg.Words = words
		return nil
	})
	set("fill", func() (e error) { cfg.Fill, e = bintext.ParseFill(fill); return })
	set("line", func() (e error) { cfg.LineEnding, e = bintext.ParseLineEnding(line); return })
	set("truncate", func() error { cfg.Truncate = trunc; return nil })
	set("hash", func() (e error) { cfg.Hash, e = bintext.ParseHash(hash); return })
	if opts.printHash && cfg.Hash == 0 {
		cfg.Hash = bintext.SHA_256
	}
	if err != nil {
		return nil, usageError(err)
	}

	var missing []string
	if opts.input == "" {
		missing = append(missing, "-b/--binary")
	}
	if opts.output == "" {
		missing = append(missing, "-t/--text")
	}
	if cfg.Format == 0 {
		missing = append(missing, "-x/--x")
	}
	if len(missing) > 0 {
		return nil, usageError(fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", ")))
	}
	if err := bintext.ValidateConfig(cfg); err != nil {
		return nil, usageError(err)
	}
	opts.cfg = cfg
	return &opts, nil
}

func loadProfile(path, name string) (*profile.Profile, error) {
	profiles, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		if len(profiles) != 1 {
			return nil, fmt.Errorf("%s holds %d profiles, select one with --name", path, len(profiles))
		}
		for _, p := range profiles {
			return p, nil
		}
	}
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("%s: no profile %q", path, name)
	}
	return p, nil
}
