// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
The huffc command compresses and decompresses files with tree-header
Huffman coding.

Usage:

	$ huffc [flags] [file ...]

Each file is compressed to file.hf. With -d, file.hf is decompressed
to file, and any other name to name.uhf. With no files, or the file
"-", standard input is processed to standard output.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"golang.org/x/huff"
)

var log = logging.MustGetLogger("huffc")

const (
	suffix   = ".hf"
	unsuffix = ".uhf"
)

const usageText = `Usage: huffc [flags] [file ...]

Compresses each file to file.hf, or decompresses with -d.
With no files, or "-", reads standard input and writes standard output.

`

// app is the command's configuration and I/O environment.
type app struct {
	decompress bool
	stdout     bool
	output     string
	force      bool
	remove     bool
	print      bool
	verify     bool
	verbose    bool
	debug      bool

	stdin          io.Reader
	out, errOut    io.Writer
	isTerminal     func(w io.Writer) bool
	leveledBackend logging.LeveledBackend
}

func newApp() *app {
	return &app{
		stdin:      os.Stdin,
		out:        os.Stdout,
		errOut:     os.Stderr,
		isTerminal: fileIsTerminal,
	}
}

func fileIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	a := newApp()
	a.startLogging()
	files, err := a.parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffc: %v\n", err)
		os.Exit(2)
	}
	if err := a.run(files); err != nil {
		fmt.Fprintf(os.Stderr, "huffc: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) startLogging() {
	backend := logging.NewLogBackend(a.errOut, "huffc: ", 0)
	formatter := logging.MustStringFormatter("%{level:.4s} %{module:-14s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.WARNING, "")
	logging.SetBackend(leveled)
	a.leveledBackend = leveled
}

func (a *app) parseFlags(args []string) ([]string, error) {
	fs := flag.NewFlagSet("huffc", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		io.WriteString(a.errOut, usageText)
		fs.PrintDefaults()
	}
	fs.BoolVar(&a.decompress, "d", false, "decompress instead of compressing")
	fs.BoolVar(&a.stdout, "c", false, "write to standard output")
	fs.StringVar(&a.output, "o", "", "write to the named `file` (one input only)")
	fs.BoolVar(&a.force, "f", false, "overwrite outputs; write compressed data to a terminal")
	fs.BoolVar(&a.remove, "rm", false, "remove each input file after its output file was written")
	fs.BoolVar(&a.print, "p", false, "print the code tree and code table to standard error")
	fs.BoolVar(&a.verify, "verify", false, "decompress each compressed output and compare digests")
	fs.BoolVar(&a.verbose, "v", false, "report sizes and ratios")
	fs.BoolVar(&a.debug, "debug", false, "log debugging details")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	switch {
	case a.output != "" && len(files) > 1:
		return nil, errors.New("-o needs exactly one input")
	case a.output != "" && a.stdout:
		return nil, errors.New("-o and -c are exclusive")
	case a.remove && a.stdout:
		return nil, errors.New("-rm and -c are exclusive")
	case a.verify && a.decompress:
		return nil, errors.New("-verify applies to compression only")
	}
	if a.leveledBackend != nil {
		switch {
		case a.debug:
			a.leveledBackend.SetLevel(logging.DEBUG, "")
		case a.verbose:
			a.leveledBackend.SetLevel(logging.INFO, "")
		}
	}
	return files, nil
}

func (a *app) run(files []string) error {
	for _, name := range files {
		if err := a.process(name); err != nil {
			if name == "-" {
				name = "(stdin)"
			}
			return errors.Wrap(err, name)
		}
	}
	return nil
}

// outputName returns the name of the file written for input name.
func outputName(name string, decompress bool) string {
	if !decompress {
		return name + suffix
	}
	if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
		return strings.TrimSuffix(name, suffix)
	}
	return name + unsuffix
}

func (a *app) process(name string) (err error) {
	if !a.decompress && !a.force && strings.HasSuffix(name, suffix) {
		return errors.Errorf("already has %s suffix", suffix)
	}
	in, err := a.openInput(name, !a.decompress || a.print)
	if err != nil {
		return err
	}
	defer in.Close()

	toStdout := a.stdout || (name == "-" && a.output == "")
	var dst io.Writer
	var outName string
	var outFile *os.File
	if toStdout {
		if !a.decompress && !a.force && a.isTerminal(a.out) {
			return errors.New("compressed data not written to a terminal; use -f to force")
		}
		dst = a.out
	} else {
		outName = a.output
		if outName == "" {
			outName = outputName(name, a.decompress)
		}
		if outFile, err = createOutput(outName, a.force); err != nil {
			return err
		}
		defer func() {
			if cerr := outFile.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "closing output")
			}
			if err != nil {
				os.Remove(outName)
			}
		}()
		dst = outFile
	}

	bw := bufio.NewWriter(dst)
	var st huff.Stats
	if a.decompress {
		st, err = huff.DecompressStream(bw, in)
	} else {
		st, err = huff.CompressStream(bw, in)
	}
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "writing output")
	}
	if err != nil {
		return err
	}

	if a.verify {
		if outFile == nil {
			return errors.New("-verify needs a file output")
		}
		if err := verify(in, outName); err != nil {
			return err
		}
	}
	if a.print {
		if err := a.printTree(in); err != nil {
			return err
		}
	}
	a.report(name, st)

	if a.remove && name != "-" {
		in.Close()
		if err := os.Remove(name); err != nil {
			return errors.Wrap(err, "removing input")
		}
		log.Debugf("removed %s", name)
	}
	return nil
}

// printTree prints the tree used for in, which must be positioned
// where processing started.
func (a *app) printTree(in *input) error {
	if err := in.rewind(); err != nil {
		return err
	}
	var root *huff.Node
	var err error
	if a.decompress {
		root, err = huff.ReadTree(in)
	} else {
		root, err = huff.TreeFor(in)
	}
	if err != nil {
		return err
	}
	codes, err := huff.DeriveCodes(root)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.errOut, "%v\n%v", root, codes)
	return nil
}

func (a *app) report(name string, st huff.Stats) {
	if !log.IsEnabledFor(logging.INFO) {
		return
	}
	if name == "-" {
		name = "(stdin)"
	}
	p := message.NewPrinter(language.English)
	raw, packed := st.BytesIn(), st.BytesOut()
	if a.decompress {
		raw, packed = packed, raw
	}
	ratio := 0.0
	if raw > 0 {
		ratio = 100 * (1 - float64(packed)/float64(raw))
	}
	log.Info(p.Sprintf("%s: %d bytes raw, %d bytes compressed, %.1f%% saved", name, raw, packed, ratio))
}
