package wordcalc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", []lexToken{{kind: tokenEOF, pos: 1}}},
		{" \t \r\n ", []lexToken{{kind: tokenEOF, pos: 7}}},
		// words
		{"два", []lexToken{{text: "два", kind: tokenWord, pos: 1}, {kind: tokenEOF, pos: 4}}},
		{"два плюс два", []lexToken{
			{text: "два", kind: tokenWord, pos: 1},
			{text: "плюс", kind: tokenWord, pos: 5},
			{text: "два", kind: tokenWord, pos: 10},
			{kind: tokenEOF, pos: 13},
		}},
		{"  два\tтри ", []lexToken{
			{text: "два", kind: tokenWord, pos: 3},
			{text: "три", kind: tokenWord, pos: 7},
			{kind: tokenEOF, pos: 11},
		}},
		// phrases
		{"умножить на", []lexToken{{text: "умножить на", kind: tokenWord, pos: 1}, {kind: tokenEOF, pos: 12}}},
		{"поделить на", []lexToken{{text: "поделить на", kind: tokenWord, pos: 1}, {kind: tokenEOF, pos: 12}}},
		{"умножить   на", []lexToken{{text: "умножить на", kind: tokenWord, pos: 1}, {kind: tokenEOF, pos: 14}}},
		{"умножить", []lexToken{{text: "умножить", kind: tokenWord, pos: 1}, {kind: tokenEOF, pos: 9}}},
		{"на умножить", []lexToken{
			{text: "на", kind: tokenWord, pos: 1},
			{text: "умножить", kind: tokenWord, pos: 4},
			{kind: tokenEOF, pos: 12},
		}},
		{"умножить на на", []lexToken{
			{text: "умножить на", kind: tokenWord, pos: 1},
			{text: "на", kind: tokenWord, pos: 13},
			{kind: tokenEOF, pos: 15},
		}},
		{"умножить поделить на", []lexToken{
			{text: "умножить", kind: tokenWord, pos: 1},
			{text: "поделить на", kind: tokenWord, pos: 10},
			{kind: tokenEOF, pos: 21},
		}},
		{"Умножить на", []lexToken{
			{text: "Умножить", kind: tokenWord, pos: 1},
			{text: "на", kind: tokenWord, pos: 10},
			{kind: tokenEOF, pos: 12},
		}},
		// brackets
		{"( два )", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "два", kind: tokenWord, pos: 3},
			{text: ")", kind: tokenClose, pos: 7},
			{kind: tokenEOF, pos: 8},
		}},
		{"(два)", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "два", kind: tokenWord, pos: 2},
			{text: ")", kind: tokenClose, pos: 5},
			{kind: tokenEOF, pos: 6},
		}},
		{"умножить (на", []lexToken{
			{text: "умножить", kind: tokenWord, pos: 1},
			{text: "(", kind: tokenOpen, pos: 10},
			{text: "на", kind: tokenWord, pos: 11},
			{kind: tokenEOF, pos: 13},
		}},
	}
	for _, c := range cases {
		got, err := tokenize(strings.NewReader(c.src))
		if err != nil {
			t.Errorf("tokenizing %q: unexpected error %v", c.src, err)
			continue
		}
		if len(got) != len(c.tokens) {
			t.Errorf("tokenizing %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("tokenizing %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

type errReader struct {
	*strings.Reader
	err error
}

func (r errReader) ReadRune() (rune, int, error) {
	c, sz, err := r.Reader.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, r.err
	}
	return c, sz, err
}

func TestTokenizeReadError(t *testing.T) {
	want := errors.New("read failed")
	_, err := tokenize(errReader{strings.NewReader("два плюс"), want})
	if !errors.Is(err, want) {
		t.Errorf("want %v, got %v", want, err)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   lexToken
		want lexToken
	}{
		{lexToken{text: "плюс", kind: tokenWord}, lexToken{text: "+", kind: tokenOp}},
		{lexToken{text: "минус", kind: tokenWord}, lexToken{text: "-", kind: tokenOp}},
		{lexToken{text: "умножить на", kind: tokenWord}, lexToken{text: "*", kind: tokenOp}},
		{lexToken{text: "поделить на", kind: tokenWord}, lexToken{text: "/", kind: tokenOp}},
		{lexToken{text: "+", kind: tokenWord}, lexToken{text: "+", kind: tokenOp}},
		{lexToken{text: "/", kind: tokenWord}, lexToken{text: "/", kind: tokenOp}},
		{lexToken{text: "(", kind: tokenWord}, lexToken{text: "(", kind: tokenOpen}},
		{lexToken{text: ")", kind: tokenWord}, lexToken{text: ")", kind: tokenClose}},
		{lexToken{text: "42", kind: tokenWord}, lexToken{text: "42", kind: tokenNum, num: 42}},
		{lexToken{text: "99999999999999999999", kind: tokenWord}, lexToken{text: "99999999999999999999", kind: tokenWord}},
		{lexToken{text: "4.2", kind: tokenWord}, lexToken{text: "4.2", kind: tokenWord}},
		{lexToken{text: "два", kind: tokenWord}, lexToken{text: "два", kind: tokenWord}},
		{lexToken{text: "Плюс", kind: tokenWord}, lexToken{text: "Плюс", kind: tokenWord}},
		{lexToken{text: "умножить", kind: tokenWord}, lexToken{text: "умножить", kind: tokenWord}},
		{lexToken{kind: tokenEOF, pos: 3}, lexToken{kind: tokenEOF, pos: 3}},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.want {
			t.Errorf("normalizing %v: want %v, got %v", c.in, c.want, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, w := range []string{"плюс", "минус", "умножить на", "поделить на", "+", "-", "*", "/", "(", ")", "7", "сто", "слово"} {
		once := normalize(lexToken{text: w, kind: tokenWord, pos: 1})
		if twice := normalize(once); twice != once {
			t.Errorf("normalizing %q twice: want %v, got %v", w, once, twice)
		}
	}
}
