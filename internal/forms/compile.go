package forms

import (
	"errors"
	"fmt"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/footprint-tools/verbs/internal/arguments"
)

// specToken is both the lexer output and the combinator's result value.
type specToken struct {
	text string
	slot bool
	name string
	kind string
}

var ErrMalformedSpec = errors.New("forms: malformed usage spec")

func tokenType(typ string) pc.Parser[specToken] {
	return func(pctx *pc.ParseContext[specToken], tokens []pc.Token[specToken]) (int, []pc.Token[specToken], error) {
		if len(tokens) > 0 && tokens[0].Type == typ {
			return 1, tokens[:1], nil
		}
		return 0, nil, pc.ErrNotMatch
	}
}

var (
	angleOpen  = tokenType("open")
	angleClose = tokenType("close")
	colon      = tokenType("colon")
	ident      = tokenType("ident")
	word       = tokenType("word")

	// <name> or <name: kind>
	slotElement = pc.Trans(
		pc.Seq(angleOpen, ident, pc.Optional(pc.Seq(colon, ident)), angleClose),
		func(pctx *pc.ParseContext[specToken], src []pc.Token[specToken]) ([]pc.Token[specToken], error) {
			el := specToken{slot: true, name: src[1].Val.text}
			if len(src) == 5 {
				el.kind = src[3].Val.text
			}
			return []pc.Token[specToken]{{Type: "slot", Pos: src[0].Pos, Val: el}}, nil
		},
	)

	literalElement = pc.Trans(
		word,
		func(pctx *pc.ParseContext[specToken], src []pc.Token[specToken]) ([]pc.Token[specToken], error) {
			return []pc.Token[specToken]{{Type: "literal", Pos: src[0].Pos, Val: src[0].Val}}, nil
		},
	)

	usageSpec = pc.Seq(
		pc.ZeroOrMore("element", pc.Or(slotElement, literalElement)),
		pc.EOS[specToken](),
	)
)

// Compile builds a form from a usage spec such as "with <arg: u32>".
//
// Tokens of the form <name: kind> become slots whose parser is looked up in
// the arguments registry. A bare <name> takes its parser from the slot of
// the same name in slots. Every other whitespace-delimited token is a
// literal. An empty spec yields a form made of slots, in order.
func Compile(spec string, slots ...Element) (Form, error) {
	tokens, err := lexSpec(spec)
	if err != nil {
		return Form{}, err
	}
	if len(tokens) == 0 {
		return New(slots...), nil
	}

	pctx := pc.NewParseContext[specToken]()
	consumed, parsed, err := usageSpec(pctx, tokens)
	if err != nil || consumed != len(tokens) {
		return Form{}, fmt.Errorf("%w: %q", ErrMalformedSpec, spec)
	}

	provided := make(map[string]Element, len(slots))
	for _, s := range slots {
		if !s.IsSlot() {
			return Form{}, fmt.Errorf("forms: element %q is not a slot", s.Literal)
		}
		provided[s.Name] = s
	}

	used := make(map[string]bool)
	var elements []Element
	for _, t := range parsed {
		if !t.Val.slot {
			elements = append(elements, Lit(t.Val.text))
			continue
		}

		name := t.Val.name
		if used[name] {
			return Form{}, fmt.Errorf("forms: slot %q appears twice in %q", name, spec)
		}
		used[name] = true

		el, err := resolveSlot(name, t.Val.kind, provided)
		if err != nil {
			return Form{}, err
		}
		elements = append(elements, el)
	}

	for _, s := range slots {
		if !used[s.Name] {
			return Form{}, fmt.Errorf("forms: slot %q not referenced by %q", s.Name, spec)
		}
	}

	return New(elements...), nil
}

// MustCompile is like Compile but panics on error. It is meant for forms
// declared at program start.
func MustCompile(spec string, slots ...Element) Form {
	f, err := Compile(spec, slots...)
	if err != nil {
		panic(err)
	}
	return f
}

func resolveSlot(name, kind string, provided map[string]Element) (Element, error) {
	if el, ok := provided[name]; ok {
		if kind != "" && kind != el.Parser.Identifier() {
			return Element{}, fmt.Errorf("forms: slot %q declared as %s but bound to %s", name, kind, el.Parser.Identifier())
		}
		return el, nil
	}
	if kind == "" {
		return Element{}, fmt.Errorf("forms: slot %q has no type", name)
	}
	p, ok := arguments.Lookup(kind)
	if !ok {
		return Element{}, fmt.Errorf("forms: unknown argument type %q for slot %q", kind, name)
	}
	return Slot(name, p), nil
}

// lexSpec splits a usage spec into combinator tokens. Inside angle brackets
// it emits open/ident/colon/close; outside it emits whitespace-delimited
// words.
func lexSpec(spec string) ([]pc.Token[specToken], error) {
	var tokens []pc.Token[specToken]
	inSlot := false

	emit := func(typ, text string, at int) {
		tokens = append(tokens, pc.Token[specToken]{
			Type: typ,
			Pos:  &pc.Pos{Line: 1, Col: at + 1, Index: at},
			Val:  specToken{text: text},
			Raw:  text,
		})
	}

	i := 0
	for i < len(spec) {
		ch := spec[i]
		switch {
		case ch == ' ' || ch == '\t':
			i++
		case ch == '<' && !inSlot:
			emit("open", "<", i)
			inSlot = true
			i++
		case ch == '>' && inSlot:
			emit("close", ">", i)
			inSlot = false
			i++
		case ch == ':' && inSlot:
			emit("colon", ":", i)
			i++
		case ch == '<' || ch == '>':
			return nil, fmt.Errorf("%w: unexpected %q at column %d", ErrMalformedSpec, ch, i+1)
		default:
			start := i
			for i < len(spec) && !isSpecBreak(spec[i], inSlot) {
				i++
			}
			typ := "word"
			if inSlot {
				typ = "ident"
			}
			emit(typ, spec[start:i], start)
		}
	}

	if inSlot {
		return nil, fmt.Errorf("%w: unterminated slot in %q", ErrMalformedSpec, spec)
	}
	return tokens, nil
}

func isSpecBreak(ch byte, inSlot bool) bool {
	if ch == ' ' || ch == '\t' || ch == '<' {
		return true
	}
	return inSlot && (ch == '>' || ch == ':')
}
