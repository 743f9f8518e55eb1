// Package renderer turns a parsed stub into target-language source by
// feeding each command through the language's template bundle and
// assembling the results with the main template.
package renderer

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"github.com/pacer/stubgen/internal/stub/language"
	"github.com/pacer/stubgen/internal/stub/parser"
)

// mainTemplate is the kind name of the top-level assembly template.
const mainTemplate = "main"

// RenderError reports a failed template lookup or evaluation, naming the
// template that failed.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer emits target-language source for one stub and one language.
type Renderer struct {
	lang     *language.Language
	stub     *parser.Stub
	engine   Engine
	comments map[string]string
}

// Render generates the target-language source for an already-parsed stub
// definition. A fresh template engine is built per call, so concurrent
// renders of the same stub for different languages stay independent.
func Render(lang *language.Language, stub *parser.Stub) (string, error) {
	rend, err := New(lang, stub)
	if err != nil {
		return "", err
	}

	return rend.Render()
}

// New builds a Renderer over the language's bundled templates. The "case"
// template function applies the language's full identifier transformation,
// so a template can case a literal identifier (a loop count, a loopline
// object) exactly the way declared variable names are cased.
func New(lang *language.Language, stub *parser.Stub) (*Renderer, error) {
	sources, err := lang.TemplateSources()
	if err != nil {
		return nil, err
	}

	funcs := template.FuncMap{"case": lang.TransformVariableName}

	engine, err := NewTextEngine(sources, funcs)
	if err != nil {
		return nil, err
	}

	return NewWithEngine(lang, stub, engine), nil
}

// NewWithEngine builds a Renderer over a caller-supplied engine.
func NewWithEngine(lang *language.Language, stub *parser.Stub, engine Engine) *Renderer {
	comments := make(map[string]string, len(stub.InputComments))
	for _, c := range stub.InputComments {
		comments[c.Variable] = c.Comment
	}

	return &Renderer{
		lang:     lang,
		stub:     stub,
		engine:   engine,
		comments: comments,
	}
}

// Render walks the command list and assembles the final source through the
// main template. Each command's output is normalized to end in exactly one
// newline before assembly.
func (r *Renderer) Render() (string, error) {
	commands := make([]string, 0, len(r.stub.Commands))

	for _, cmd := range r.stub.Commands {
		rendered, err := r.renderCommand(cmd)
		if err != nil {
			return "", err
		}

		commands = append(commands, collapseBlankLines(rendered+"\n"))
	}

	return r.renderTemplate(mainTemplate, map[string]any{
		"commands": commands,
	})
}

func (r *Renderer) renderCommand(cmd parser.Cmd) (string, error) {
	switch c := cmd.(type) {
	case *parser.ReadCmd:
		return r.renderRead(c)
	case *parser.WriteCmd:
		return r.renderWrite(c)
	case *parser.LoopCmd:
		return r.renderLoop(c)
	case *parser.LoopLineCmd:
		return r.renderLoopLine(c)
	}

	panic(fmt.Sprintf("no renderer for command %T", cmd))
}

func (r *Renderer) renderRead(cmd *parser.ReadCmd) (string, error) {
	out, err := r.renderTemplate(parser.KindRead.String(), map[string]any{
		"vars":        r.resolveVariables(cmd.Variables),
		"type_tokens": r.lang.TypeTokens,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimRightFunc(out, unicode.IsSpace), nil
}

func (r *Renderer) renderWrite(cmd *parser.WriteCmd) (string, error) {
	return r.renderTemplate(parser.KindWrite.String(), map[string]any{
		"messages": splitLines(cmd.Message),
	})
}

func (r *Renderer) renderLoop(cmd *parser.LoopCmd) (string, error) {
	inner, err := r.renderCommand(cmd.Command)
	if err != nil {
		return "", err
	}

	return r.renderTemplate(parser.KindLoop.String(), map[string]any{
		"count": cmd.Count,
		"inner": splitLines(inner),
	})
}

func (r *Renderer) renderLoopLine(cmd *parser.LoopLineCmd) (string, error) {
	return r.renderTemplate(parser.KindLoopLine.String(), map[string]any{
		"object":      cmd.Object,
		"vars":        r.resolveVariables(cmd.Variables),
		"type_tokens": r.lang.TypeTokens,
	})
}

// renderTemplate resolves a command kind to its template file and executes
// it. A kind with no template in the bundle is an error, not a silent skip.
func (r *Renderer) renderTemplate(kind string, context map[string]any) (string, error) {
	name := r.templateName(kind)

	if !r.engine.Has(name) {
		return "", &RenderError{Template: name, Err: errors.New("missing from the language bundle")}
	}

	out, err := r.engine.Render(name, context)
	if err != nil {
		return "", &RenderError{Template: name, Err: err}
	}

	return out, nil
}

// templateName builds the bundle file name for a command kind, for example
// "read.py.tmpl".
func (r *Renderer) templateName(kind string) string {
	return kind + "." + r.lang.SourceFileExt + ".tmpl"
}

// collapseBlankLines folds runs of consecutive newlines down to a single
// one, repeating until none remain.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n") {
		s = strings.ReplaceAll(s, "\n\n", "\n")
	}

	return s
}

// splitLines splits rendered text or a write message into its lines. A
// trailing newline does not produce a final empty line, and empty input has
// no lines at all.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
