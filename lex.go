package wordcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	// num is the value of a tokenNum.
	num float64
	// neg marks a minus that negates the following term.
	neg bool
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenWord is any word that is not yet known to be something else.
	tokenWord
	// tokenNum is a numeral, either aggregated number words or digits.
	tokenNum
	// tokenOp is one of the operators + - * /.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenWord:
		return "Word"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// operators maps operator words to the operators they name. The symbols
// themselves are also accepted in expressions.
var operators = map[string]string{
	"плюс":        "+",
	"минус":       "-",
	"умножить на": "*",
	"поделить на": "/",
}

// phrases lists the first words of two-word operators. Each must be followed
// by "на".
var phrases = map[string]bool{
	"умножить": true,
	"поделить": true,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next raw token from the input: a bracket, a word, or EOF.
// Once EOF is returned, every later call returns it again.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lexToken{kind: tokenEOF, pos: l.rune + 1}, nil
			}
			return lexToken{pos: l.rune}, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case r == '(':
			return lexToken{text: "(", kind: tokenOpen, pos: l.rune}, nil
		case r == ')':
			return lexToken{text: ")", kind: tokenClose, pos: l.rune}, nil
		default:
			tok := lexToken{kind: tokenWord, pos: l.rune}
			l.buf.WriteRune(r)
			if err := l.scanWord(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			return tok, nil
		}
	}
}

func (l *lexer) scanWord() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if unicode.IsSpace(r) || r == '(' || r == ')' {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// tokenize scans all tokens from src, joining two-word operators such as
// "умножить на" into single word tokens. The EOF token is not included.
func tokenize(src io.RuneScanner) ([]lexToken, error) {
	scan := lex(src)
	var raw []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			break
		}
		raw = append(raw, tok)
	}
	toks := make([]lexToken, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if tok.kind == tokenWord && phrases[tok.text] && i+1 < len(raw) {
			if nx := raw[i+1]; nx.kind == tokenWord && nx.text == "на" {
				tok.text += " на"
				i++
			}
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// normalize classifies a word token as an operator, a bracket, or a digit
// numeral. Other tokens, including ones already normalized, are returned
// unchanged.
func normalize(tok lexToken) lexToken {
	if tok.kind != tokenWord {
		return tok
	}
	if op, ok := operators[tok.text]; ok {
		tok.kind = tokenOp
		tok.text = op
		return tok
	}
	switch tok.text {
	case "+", "-", "*", "/":
		tok.kind = tokenOp
	case "(":
		tok.kind = tokenOpen
	case ")":
		tok.kind = tokenClose
	default:
		if isdigits(tok.text) {
			v, err := strconv.ParseInt(tok.text, 10, 64)
			if err != nil {
				// Too large. Leave it as a word so the parser rejects it.
				return tok
			}
			tok.kind = tokenNum
			tok.num = float64(v)
		}
	}
	return tok
}

func isdigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
