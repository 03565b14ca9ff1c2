// Package highlight implements the classifier collaborator for srcimg:
// a word-oriented scanner for C-family source that annotates each line
// with color-control sequences understood by the srcimg decoder.
//
// Classification is deliberately coarse: words are split on whitespace,
// comments are assumed to be separated from code by a space, and string
// literals containing spaces are colored run by run. That is enough for
// readable renderings without a full lexer.
package highlight

import (
	"bytes"

	"github.com/srcimg/srcimg"
)

// Engine classifies C-family source text. The only state carried across
// lines is whether a multi-line comment is open; line comments reset at
// the line break that ends them.
type Engine struct {
	inMulti bool
}

// New returns a classifier with no open comment.
func New() *Engine {
	return &Engine{}
}

// Annotate implements srcimg.Classifier. The returned buffer holds the
// literal bytes of line interleaved with color-control sequences; it is
// always at least as long as the input.
func (e *Engine) Annotate(line []byte) []byte {
	out := make([]byte, 0, len(line)+16)
	active := srcimg.RoleDefault
	inLine := false

	i := 0
	for i < len(line) {
		if isSpace(line[i]) {
			role := srcimg.RoleDefault
			if inLine || e.inMulti {
				role = srcimg.RoleComment
			}
			out = switchTo(out, &active, role)
			out = append(out, line[i])
			i++
			continue
		}

		j := i
		for j < len(line) && !isSpace(line[j]) {
			j++
		}
		word := line[i:j]

		if role, ok := e.commentRole(word, &inLine); ok {
			out = switchTo(out, &active, role)
			out = append(out, word...)
		} else {
			out = e.appendCode(out, word, &active)
		}
		i = j
	}

	return out
}

// commentRole decides whether a word belongs to a comment and updates the
// comment state. A word may open and close a multi-line comment at once.
func (e *Engine) commentRole(word []byte, inLine *bool) (srcimg.Role, bool) {
	if *inLine {
		return srcimg.RoleComment, true
	}

	closes := bytes.HasSuffix(word, []byte("*/"))

	if len(word) >= 2 && word[0] == '/' {
		switch word[1] {
		case '/':
			*inLine = true
			return srcimg.RoleComment, true
		case '*':
			if !closes {
				e.inMulti = true
			}
			return srcimg.RoleComment, true
		}
	}

	if closes {
		e.inMulti = false
		return srcimg.RoleComment, true
	}

	if e.inMulti {
		return srcimg.RoleComment, true
	}

	return 0, false
}

// appendCode annotates one non-comment word. Preprocessor directives and
// quoted literals color the whole word; everything else is split into
// identifier and symbol runs.
func (e *Engine) appendCode(out, word []byte, active *srcimg.Role) []byte {
	switch word[0] {
	case '#':
		out = switchTo(out, active, srcimg.RolePreproc)
		return append(out, word...)
	case '"', '\'':
		out = switchTo(out, active, srcimg.RoleString)
		return append(out, word...)
	}

	i := 0
	for i < len(word) {
		if !isIdent(word[i]) {
			out = switchTo(out, active, srcimg.RoleSymbol)
			out = append(out, word[i])
			i++
			continue
		}

		j := i
		for j < len(word) && isIdent(word[j]) {
			j++
		}
		id := word[i:j]

		role := identRole(id)
		if role == srcimg.RoleDefault && j < len(word) && word[j] == '(' {
			role = srcimg.RoleCall
		}
		out = switchTo(out, active, role)
		out = append(out, id...)
		i = j
	}
	return out
}

// switchTo emits a color sequence when the wanted role differs from the
// active one. The background never changes.
func switchTo(out []byte, active *srcimg.Role, role srcimg.Role) []byte {
	if *active == role {
		return out
	}
	*active = role
	return srcimg.AppendColorSwitch(out, role, srcimg.RoleBackground)
}

// identRole classifies one identifier run.
func identRole(id []byte) srcimg.Role {
	if id[0] >= '0' && id[0] <= '9' {
		return srcimg.RoleNumber
	}
	if _, ok := keywords[string(id)]; ok {
		return srcimg.RoleKeyword
	}
	if _, ok := types[string(id)]; ok {
		return srcimg.RoleType
	}
	return srcimg.RoleDefault
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isIdent(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

var keywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "const": {}, "continue": {},
	"default": {}, "do": {}, "else": {}, "enum": {}, "extern": {},
	"for": {}, "goto": {}, "if": {}, "inline": {}, "register": {},
	"restrict": {}, "return": {}, "sizeof": {}, "static": {},
	"struct": {}, "switch": {}, "typedef": {}, "union": {},
	"volatile": {}, "while": {},
}

var types = map[string]struct{}{
	"void": {}, "char": {}, "short": {}, "int": {}, "long": {},
	"float": {}, "double": {}, "signed": {}, "unsigned": {}, "bool": {},
	"size_t": {}, "ssize_t": {}, "FILE": {},
	"int8_t": {}, "int16_t": {}, "int32_t": {}, "int64_t": {},
	"uint8_t": {}, "uint16_t": {}, "uint32_t": {}, "uint64_t": {},
	"intptr_t": {}, "uintptr_t": {},
}
