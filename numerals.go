package wordcalc

import "strings"

// numerals maps every recognized number word to its value. Keys are exact
// surface forms; there is no case folding or stemming. The map is never
// modified after initialization.
var numerals = map[string]int64{
	"ноль": 0,

	// 1 in every case and gender.
	"один":   1,
	"одного": 1,
	"одному": 1,
	"одним":  1,
	"одном":  1,
	"одна":   1,
	"одной":  1,
	"одну":   1,
	"одною":  1,
	"одно":   1,

	"два":    2,
	"двух":   2,
	"двум":   2,
	"двумя":  2,
	"двое":   2,
	"двоих":  2,
	"двоим":  2,
	"двоими": 2,

	"три":    3,
	"трёх":   3,
	"трех":   3,
	"трем":   3,
	"трём":   3,
	"тремя":  3,
	"трое":   3,
	"троих":  3,
	"троим":  3,
	"троими": 3,

	"четыре":    4,
	"четырех":   4,
	"четырёх":   4,
	"четырем":   4,
	"четырём":   4,
	"четырьмя":  4,
	"четверо":   4,
	"четверых":  4,
	"четверым":  4,
	"четверыми": 4,

	"пять":         5,
	"шесть":        6,
	"семь":         7,
	"восемь":       8,
	"девять":       9,
	"десять":       10,
	"одиннадцать":  11,
	"двенадцать":   12,
	"тринадцать":   13,
	"четырнадцать": 14,
	"пятнадцать":   15,
	"шестнадцать":  16,
	"семнадцать":   17,
	"восемнадцать": 18,
	"девятнадцать": 19,

	"двадцать":    20,
	"тридцать":    30,
	"сорок":       40,
	"пятьдесят":   50,
	"шестьдесят":  60,
	"семьдесят":   70,
	"восемьдесят": 80,
	"девяносто":   90,

	"сто":       100,
	"двести":    200,
	"триста":    300,
	"четыреста": 400,
	"пятьсот":   500,
	"шестьсот":  600,
	"семьсот":   700,
	"восемьсот": 800,
	"девятьсот": 900,

	"тысяча":  1000,
	"тысячи":  1000,
	"тысяч":   1000,
	"тысяче":  1000,
	"тысячей": 1000,
}

// Numeral returns the value of a single number word.
func Numeral(word string) (int64, bool) {
	v, ok := numerals[word]
	return v, ok
}

// Numerals returns a copy of the number word table.
func Numerals() map[string]int64 {
	m := make(map[string]int64, len(numerals))
	for k, v := range numerals {
		m[k] = v
	}
	return m
}

// numeral computes the value of a run of number words. Hundreds multiply
// the group being built, thousands multiply it and close it, and anything
// smaller adds to it. An empty group counts as one when multiplied, so
// "сто" is 100 and "тысяча" is 1000. Long runs of hundreds grow without
// bound, so the arithmetic is float64.
func numeral(words []string) float64 {
	var total, current float64
	for _, w := range words {
		v := float64(numerals[w])
		switch {
		case v >= 1000:
			if current == 0 {
				current = 1
			}
			total += current * v
			current = 0
		case v >= 100:
			if current == 0 {
				current = 1
			}
			current *= v
		default:
			current += v
		}
	}
	return total + current
}

// aggregate collapses each maximal run of number words in toks into a single
// number token at the position of the run's first word. Other tokens keep
// their order.
func aggregate(toks []lexToken) []lexToken {
	r := make([]lexToken, 0, len(toks))
	var run []string
	var pos int
	flush := func() {
		if len(run) == 0 {
			return
		}
		r = append(r, lexToken{kind: tokenNum, num: numeral(run), text: strings.Join(run, " "), pos: pos})
		run = run[:0]
	}
	for _, tok := range toks {
		if tok.kind == tokenWord {
			if _, ok := numerals[tok.text]; ok {
				if len(run) == 0 {
					pos = tok.pos
				}
				run = append(run, tok.text)
				continue
			}
		}
		flush()
		r = append(r, tok)
	}
	flush()
	return r
}
