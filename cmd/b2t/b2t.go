package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/jamesliu96/bintext"
	"github.com/spf13/pflag"
	"golang.org/x/sys/cpu"
	"golang.org/x/term"
)

const app = "b2t"

var (
	gitTag = "*"
	gitRev = "*"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "error: %s\n", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) (err error) {
	printf := func(format string, a ...any) { fmt.Fprintf(stderr, format, a...) }

	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return
	}
	if opts.version {
		if opts.verbose {
			printf("%s [%s-%s] [%s] {%d} %s (%s) %s\n", app, runtime.GOOS, runtime.GOARCH, runtime.Version(), runtime.NumCPU(), gitTag, gitRev, cpuFeatures())
		} else {
			printf("%s %s (%s)\n", app, gitTag, gitRev)
		}
		return nil
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	inputFile, size, err := openInput(opts.input)
	if err != nil {
		return
	}
	defer inputFile.Close()
	logger.Debug("input opened", "path", opts.input, "size", size)

	outputFile, err := os.Create(opts.output)
	if err != nil {
		return
	}
	defer (func() {
		if e := outputFile.Close(); err == nil && e != nil {
			err = e
		}
	})()
	logger.Debug("output created", "path", opts.output)

	if opts.verbose {
		printf("%-8s%s\n", "INPUT", inputFile.Name())
		printf("%-8s%s\n", "OUTPUT", outputFile.Name())
	}

	input := io.Reader(inputFile)
	var pw *bintext.ProgressWriter
	var stopProgress func()
	if opts.progress {
		pw = bintext.NewProgressWriter(stderr, size, isTerminal(stderr))
		input = io.TeeReader(input, pw)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			pw.Progress(ctx, time.Second)
		}()
		stopProgress = func() {
			cancel()
			<-done
		}
	}
	var printFunc bintext.PrintFunc
	if opts.verbose {
		printFunc = bintext.NewDefaultPrintFunc(stderr)
	}

	start := time.Now()
	lines, sum, err := bintext.Convert(input, outputFile, opts.cfg, printFunc)
	if stopProgress != nil {
		stopProgress()
		pw.Print(true)
	}
	logger.Debug("conversion finished", "lines", lines, "elapsed", time.Since(start), "error", err)
	if opts.verbose {
		printf("%-8s%d\n", "LINES", lines)
	}
	if err != nil {
		return
	}
	if opts.verbose || opts.printHash {
		if sum != nil {
			printf("%-8s%x\n", strings.ToUpper(bintext.HashNames[opts.cfg.Hash]), sum)
		}
	}
	return nil
}

// openInput rejects anything but an existing regular file before opening it.
func openInput(path string) (file *os.File, size int64, err error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		err = &ExitError{Code: 1, Message: fmt.Sprintf("%s is not an existing regular file", path)}
		return
	}
	if file, err = os.Open(path); err != nil {
		return
	}
	if term.IsTerminal(int(file.Fd())) {
		file.Close()
		err = fmt.Errorf("%s: invalid terminal i/o", app)
		return
	}
	size = fi.Size()
	return
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func cpuFeatures() (d []string) {
	var arch any
	switch runtime.GOARCH {
	case "386", "amd64":
		arch = cpu.X86
	case "arm":
		arch = cpu.ARM
	case "arm64":
		arch = cpu.ARM64
	case "mips64", "mips64le":
		arch = cpu.MIPS64X
	case "ppc64", "ppc64le":
		arch = cpu.PPC64
	case "s390x":
		arch = cpu.S390X
	default:
		return
	}
	ks := reflect.TypeOf(arch)
	vs := reflect.ValueOf(arch)
	for i := range ks.NumField() {
		k := ks.Field(i)
		v := vs.Field(i)
		if k.Type.Kind() == reflect.Bool && v.Bool() {
			name := strings.TrimPrefix(k.Name, "Has")
			if name == k.Name {
				name = strings.TrimPrefix(k.Name, "Is")
			}
			d = append(d, name)
		}
	}
	return
}
