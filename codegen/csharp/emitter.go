// Package csharp renders the code model as C# source text.
package csharp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/broady/discogen"
	"github.com/broady/discogen/codegen/codedom"
	"github.com/broady/discogen/codegen/naming"
)

// Emitter writes namespaces as C# source. Output depends only on the model
// and the options, so the same namespace always renders to the same bytes.
type Emitter struct {
	opts   Options
	indent string
}

// NewEmitter returns an Emitter using opts.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{opts: opts, indent: opts.indent()}
}

// Render formats ns with opts.
func Render(ns *codedom.Namespace, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewEmitter(opts).EmitNamespace(&buf, ns); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EmitNamespace appends the source of ns to buf.
func (e *Emitter) EmitNamespace(buf *bytes.Buffer, ns *codedom.Namespace) error {
	if ns == nil {
		return discogen.NewError(discogen.CodeInvalidArgument, "namespace is nil")
	}
	if ns.Name() == "" {
		return discogen.NewError(discogen.CodeInvalidArgument, "namespace has no name")
	}

	var w writer
	if e.opts.Header != "" {
		for _, line := range strings.Split(strings.TrimRight(e.opts.Header, "\n"), "\n") {
			w.line(0, e.indent, strings.TrimRight("// "+line, " "))
		}
		w.blank()
	}
	w.line(0, e.indent, "namespace "+ns.Name())
	w.line(0, e.indent, "{")
	imports := ns.Imports()
	for _, imp := range imports {
		w.line(1, e.indent, "using "+imp+";")
	}
	for i, class := range ns.Classes() {
		if i > 0 || len(imports) > 0 {
			w.blank()
		}
		if err := e.emitClass(&w, class); err != nil {
			return err
		}
	}
	w.line(0, e.indent, "}")

	out := w.String()
	if !e.opts.TrailingNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	if nl := e.opts.newline(); nl != "\n" {
		out = strings.ReplaceAll(out, "\n", nl)
	}
	buf.WriteString(out)
	return nil
}

func (e *Emitter) emitClass(w *writer, class *codedom.Class) error {
	if !naming.IsValidIdentifier(class.Name()) {
		return discogen.Errorf(discogen.CodeFailedPrecondition, "class name %q is not a valid identifier", class.Name())
	}
	e.emitDoc(w, 1, class.Doc())
	w.line(1, e.indent, "public class "+class.Name())
	w.line(1, e.indent, "{")
	for i, m := range class.Members() {
		if i > 0 {
			w.blank()
		}
		if err := e.emitMember(w, m); err != nil {
			return fmt.Errorf("class %s: %w", class.Name(), err)
		}
	}
	w.line(1, e.indent, "}")
	return nil
}

func (e *Emitter) emitMember(w *writer, m codedom.Member) error {
	if !naming.IsValidIdentifier(m.MemberName()) {
		return discogen.Errorf(discogen.CodeFailedPrecondition, "%s name %q is not a valid identifier", strings.ToLower(m.Kind().String()), m.MemberName())
	}
	switch m := m.(type) {
	case *codedom.Field:
		e.emitDoc(w, 2, m.Doc)
		if err := e.emitAttributes(w, m.CustomAttributes); err != nil {
			return err
		}
		w.line(2, e.indent, declaration(m.Attributes, false, m.Type, m.Name)+";")
		return nil
	case *codedom.Property:
		return e.emitProperty(w, m)
	default:
		return discogen.Errorf(discogen.CodeInternal, "unsupported member kind %s", m.Kind())
	}
}

func (e *Emitter) emitProperty(w *writer, p *codedom.Property) error {
	e.emitDoc(w, 2, p.Doc)
	if err := e.emitAttributes(w, p.CustomAttributes); err != nil {
		return err
	}
	w.line(2, e.indent, declaration(p.Attributes, true, p.Type, p.Name))
	w.line(2, e.indent, "{")
	if p.HasGet {
		if err := e.emitAccessor(w, "get", p.Get); err != nil {
			return fmt.Errorf("property %s getter: %w", p.Name, err)
		}
	}
	if p.HasSet {
		if err := e.emitAccessor(w, "set", p.Set); err != nil {
			return fmt.Errorf("property %s setter: %w", p.Name, err)
		}
	}
	w.line(2, e.indent, "}")
	return nil
}

func (e *Emitter) emitAccessor(w *writer, keyword string, body []codedom.Statement) error {
	w.line(3, e.indent, keyword)
	w.line(3, e.indent, "{")
	for _, stmt := range body {
		text, err := statement(stmt)
		if err != nil {
			return err
		}
		w.line(4, e.indent, text)
	}
	w.line(3, e.indent, "}")
	return nil
}

func (e *Emitter) emitAttributes(w *writer, attrs []codedom.Attribute) error {
	for _, a := range attrs {
		args := make([]string, 0, len(a.Args))
		for _, arg := range a.Args {
			v, err := expression(arg.Value)
			if err != nil {
				return fmt.Errorf("attribute %s: %w", a.Name, err)
			}
			if arg.Name != "" {
				v = arg.Name + " = " + v
			}
			args = append(args, v)
		}
		text := a.Name
		if len(args) > 0 {
			text += "(" + strings.Join(args, ", ") + ")"
		}
		w.line(2, e.indent, "["+text+"]")
	}
	return nil
}

// emitDoc writes doc as an XML summary comment.
func (e *Emitter) emitDoc(w *writer, depth int, doc codedom.Documentation) {
	if !e.opts.EmitComments || doc.IsZero() {
		return
	}
	lines := strings.Split(strings.TrimSpace(doc.Text()), "\n")
	if len(lines) == 1 {
		w.line(depth, e.indent, "/// <summary>"+xmlEscape(strings.TrimSpace(lines[0]))+"</summary>")
		return
	}
	w.line(depth, e.indent, "/// <summary>")
	for _, line := range lines {
		w.line(depth, e.indent, strings.TrimRight("/// "+xmlEscape(strings.TrimSpace(line)), " "))
	}
	w.line(depth, e.indent, "/// </summary>")
}

// declaration renders modifiers, type and name. Final has no keyword of its
// own: it only suppresses virtual.
func declaration(attrs codedom.MemberAttributes, property bool, typ codedom.TypeRef, name string) string {
	var words []string
	switch {
	case attrs.Has(codedom.AttrPublic):
		words = append(words, "public")
	case attrs.Has(codedom.AttrPrivate):
		words = append(words, "private")
	}
	if attrs.Has(codedom.AttrStatic) {
		words = append(words, "static")
	} else if property && attrs.Has(codedom.AttrVirtual) && !attrs.Has(codedom.AttrFinal) {
		words = append(words, "virtual")
	}
	typeName := typ.String()
	if typ.IsZero() {
		typeName = "object"
	}
	words = append(words, typeName, name)
	return strings.Join(words, " ")
}

func statement(s codedom.Statement) (string, error) {
	switch s := s.(type) {
	case codedom.Return:
		v, err := expression(s.Value)
		if err != nil {
			return "", err
		}
		return "return " + v + ";", nil
	case codedom.Assign:
		target, err := expression(s.Target)
		if err != nil {
			return "", err
		}
		v, err := expression(s.Value)
		if err != nil {
			return "", err
		}
		return target + " = " + v + ";", nil
	case nil:
		return "", discogen.NewError(discogen.CodeFailedPrecondition, "nil statement")
	default:
		return "", discogen.Errorf(discogen.CodeFailedPrecondition, "unsupported statement %s", s.Kind())
	}
}

func expression(x codedom.Expr) (string, error) {
	switch x := x.(type) {
	case codedom.FieldRef:
		return "this." + x.Name, nil
	case codedom.ValueRef:
		return "value", nil
	case codedom.Primitive:
		return literal(x.Value)
	case nil:
		return "", discogen.NewError(discogen.CodeFailedPrecondition, "nil expression")
	default:
		return "", discogen.Errorf(discogen.CodeFailedPrecondition, "unsupported expression %s", x.Kind())
	}
}

func literal(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "null", nil
	case string:
		return quote(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10) + "L", nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64) + "D", nil
	default:
		return "", discogen.Errorf(discogen.CodeFailedPrecondition, "unsupported literal of type %T", v)
	}
}

// quote renders s as a regular C# string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlEscape(s string) string { return xmlEscaper.Replace(s) }

// writer accumulates LF-terminated lines.
type writer struct {
	strings.Builder
}

func (w *writer) line(depth int, indent, text string) {
	for range depth {
		w.WriteString(indent)
	}
	w.WriteString(text)
	w.WriteByte('\n')
}

func (w *writer) blank() { w.WriteByte('\n') }
