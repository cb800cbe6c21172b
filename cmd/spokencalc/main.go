package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/zephyrtronium/spokencalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, logname, level string
		echo                   bool
		prec, cache            int
	)
	flag.StringVar(&inname, "in", "", "input file with one utterance per line (default stdin if no args given)")
	flag.StringVar(&logname, "log", "", "write JSON logs to this file, rotated by size (default text logs on stderr)")
	flag.StringVar(&level, "v", "warn", "log level: debug, info, warn, or error")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.IntVar(&cache, "cache", 0, "number of results to remember (0 disables)")
	flag.BoolVar(&echo, "echo", false, "print symbolic expressions")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	lg, closer, err := newLogger(logname, level)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	calc := spokencalc.NewCalculator(
		spokencalc.Prec(uint(prec)),
		spokencalc.CacheSize(cache),
		spokencalc.Logger(lg),
	)
	run := func(utterance string) {
		r := calc.Evaluate(utterance)
		if echo {
			fmt.Printf("%s : ", r.Expr)
		}
		fmt.Println(r)
	}

	for _, arg := range flag.Args() {
		run(arg)
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f == nil {
		return
	}
	defer f.Close()
	// Utterances are evaluated strictly one at a time, in order.
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		run(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
