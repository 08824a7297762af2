package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/wordcalc"
)

// examples are the demonstration expressions and the results they should
// give, printed by -demo.
var examples = []struct {
	src  string
	want string
}{
	{"тридцать три поделить на три", "11"},
	{"два плюс два плюс два", "6"},
	{"минус два умножить на двадцать", "-40"},
	{"пятьдесят поделить на ноль", "Деление на ноль!"},
	{"десять минус два плюс один", "9"},
	{"девяносто один плюс пять", "96"},
	{"сто двадцать три плюс четыреста пятьдесят шесть", "579"},
	{"тысяча двести тридцать четыре минус восемьсот девяносто семь", "337"},
	{"сто тысяч плюс двадцать один", "100021"},
}

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo, demo   bool
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix form")
	flag.BoolVar(&demo, "demo", false, "evaluate the built-in examples")
	flag.Parse()

	if demo {
		printDemo(os.Stdout)
		return
	}

	srcs, err := readinput(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	srcs = append(srcs, flag.Args()...)

	verb += "\n"
	failed := false
	for _, src := range srcs {
		if !run(os.Stdout, src, verb, echo) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run evaluates one expression and prints the result or the error. It
// reports whether evaluation succeeded.
func run(w io.Writer, src, verb string, echo bool) bool {
	if echo {
		if a, err := wordcalc.ParseString(src); err == nil {
			fmt.Fprintf(w, "%v : ", a)
		}
	}
	r, err := wordcalc.EvalString(src)
	if err != nil {
		fmt.Fprintln(w, err)
		return false
	}
	fmt.Fprintf(w, verb, r)
	return true
}

func printDemo(w io.Writer) {
	for _, ex := range examples {
		fmt.Fprintf(w, "%s, ожидается: %s\n", wordcalc.Format(wordcalc.EvalString(ex.src)), ex.want)
	}
}

// readinput reads expressions from the named file, or from stdin if inname
// is "-" or std is set. It returns nothing if there is no input to read.
func readinput(inname string, std bool) ([]string, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readlines(f)
	case inname == "-", std:
		return readlines(os.Stdin)
	}
	return nil, nil
}

// readlines reads the non-blank lines of r.
func readlines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
