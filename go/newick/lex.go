package newick

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// itemType identifies the type of lexed items.
type itemType int

const (
	itemError itemType = iota // error occurred; val describes it
	itemLParen
	itemRParen
	itemComma
	itemColon
	itemSemicolon
	itemLabel
	itemNumber
	itemEOF
)

var itemNames = map[itemType]string{
	itemError:     "error",
	itemLParen:    "'('",
	itemRParen:    "')'",
	itemComma:     "','",
	itemColon:     "':'",
	itemSemicolon: "';'",
	itemLabel:     "label",
	itemNumber:    "number",
	itemEOF:       "end of input",
}

func (t itemType) String() string {
	return itemNames[t]
}

// item represents a token returned from the lexer.
type item struct {
	typ  itemType
	val  string  // raw text, or the error message for itemError
	num  float64 // parsed value, only set for itemNumber
	pos  int     // byte offset of the start of the token
	line int     // 1-based line number of the start of the token
}

const eof = -1

// Runes that terminate an unquoted label.
const delimiters = "(),:;"

const (
	numberRunes       = "0123456789.eE"
	signedNumberRunes = numberRunes + "+-"
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isLabelRune reports whether r may appear in an unquoted label: any graphic
// rune that is not whitespace, not a grammar delimiter, and not a quote or
// comment bracket.
func isLabelRune(r rune) bool {
	if r == eof || unicode.IsSpace(r) || !unicode.IsGraphic(r) {
		return false
	}
	return !strings.ContainsRune(delimiters+`'"[]`, r)
}

// lexer scans Newick text in a single left-to-right pass, producing one item
// per call to nextItem. Whitespace and bracketed comments are skipped. After
// an error every subsequent call returns the same itemError.
type lexer struct {
	input   string
	pos     int
	width   int
	line    int
	lastTyp itemType
	err     *LexError
}

func newLexer(input string) *lexer {
	return &lexer{
		input: input,
		line:  1,
	}
}

// next returns the next rune in the input, or eof.
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	if r == '\n' {
		l.line++
	}
	return r
}

// backup steps back one rune. It may only be called once per call to next.
func (l *lexer) backup() {
	if l.width == 0 {
		return
	}
	l.pos -= l.width
	if l.input[l.pos] == '\n' {
		l.line--
	}
	l.width = 0
}

// acceptRun consumes runes from the valid set and returns the input consumed
// since from.
func (l *lexer) acceptRun(from int, valid string) string {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
	return l.input[from:l.pos]
}

func (l *lexer) emit(it item) item {
	l.lastTyp = it.typ
	return it
}

func (l *lexer) errorf(kind LexErrorKind, pos, line int, detail string) item {
	l.err = &LexError{Kind: kind, Pos: pos, Line: line, Detail: detail}
	return item{typ: itemError, val: l.err.Error(), pos: pos, line: line}
}

// nextItem returns the next item from the input. The final item has type
// itemEOF.
func (l *lexer) nextItem() item {
	if l.err != nil {
		return item{typ: itemError, val: l.err.Error(), pos: l.err.Pos, line: l.err.Line}
	}
	r := l.next()
	for {
		if r == eof {
			break
		}
		if unicode.IsSpace(r) {
			r = l.next()
			continue
		}
		if r == '[' {
			pos, line := l.pos-l.width, l.line
			from := l.pos
			for {
				c := l.next()
				if c == eof {
					return l.errorf(UnterminatedComment, pos, line, l.input[from:])
				}
				if c == ']' {
					break
				}
			}
			r = l.next()
			continue
		}
		break
	}
	pos := l.pos - l.width
	line := l.line
	afterColon := l.lastTyp == itemColon

	switch {
	case r == eof:
		return l.emit(item{typ: itemEOF, pos: len(l.input), line: l.line})
	case r == '(':
		return l.emit(item{typ: itemLParen, val: "(", pos: pos, line: line})
	case r == ')':
		return l.emit(item{typ: itemRParen, val: ")", pos: pos, line: line})
	case r == ',':
		return l.emit(item{typ: itemComma, val: ",", pos: pos, line: line})
	case r == ':':
		return l.emit(item{typ: itemColon, val: ":", pos: pos, line: line})
	case r == ';':
		return l.emit(item{typ: itemSemicolon, val: ";", pos: pos, line: line})
	case r == '\'' || r == '"':
		return l.lexQuote(r, pos, line)
	case afterColon && (r == '+' || r == '-' || r == '.' || isDigit(r)):
		return l.lexNumber(pos, line, signedNumberRunes)
	case r == '.' || isDigit(r):
		return l.lexNumber(pos, line, numberRunes)
	case isLabelRune(r):
		return l.lexLabel(pos, line)
	default:
		return l.errorf(UnrecognizedCharacter, pos, line, string(r))
	}
}

// lexLabel scans an unquoted label whose first rune has been consumed.
func (l *lexer) lexLabel(pos, line int) item {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if !isLabelRune(r) {
			l.backup()
			break
		}
	}
	return l.emit(item{typ: itemLabel, val: l.input[pos:l.pos], pos: pos, line: line})
}

// lexNumber scans a branch length or other numeric run whose first rune has
// been consumed, validating it with strconv.
func (l *lexer) lexNumber(pos, line int, valid string) item {
	text := l.acceptRun(pos, valid)
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return l.errorf(InvalidNumber, pos, line, text)
	}
	return l.emit(item{typ: itemNumber, val: text, num: num, pos: pos, line: line})
}

// lexQuote scans a quoted label. The text between the quotes is taken
// verbatim, so delimiters and whitespace are allowed; there is no escape for
// the quote rune itself.
func (l *lexer) lexQuote(quote rune, pos, line int) item {
	from := l.pos
	for {
		r := l.next()
		if r == eof {
			return l.errorf(UnterminatedQuote, pos, line, l.input[from:])
		}
		if r == quote {
			break
		}
	}
	return l.emit(item{typ: itemLabel, val: l.input[from : l.pos-l.width], pos: pos, line: line})
}
