package csharp

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/broady/discogen"
)

var (
	validate      = validator.New()
	optionDecoder = newOptionDecoder()
)

func newOptionDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(false)
	return d
}

// Options controls source formatting.
type Options struct {
	// IndentStyle is "space" or "tab".
	IndentStyle string `schema:"indent_style" validate:"oneof=space tab"`

	// IndentSize is the number of spaces per level when IndentStyle is "space".
	IndentSize int `schema:"indent_size" validate:"gte=1,lte=8"`

	// LineEnding is "lf" or "crlf".
	LineEnding string `schema:"line_ending" validate:"oneof=lf crlf"`

	// TrailingNewline ends the output with a line ending.
	TrailingNewline bool `schema:"trailing_newline"`

	// EmitComments renders documentation as XML doc comments.
	EmitComments bool `schema:"emit_comments"`

	// Header is emitted as line comments above the namespace.
	Header string `schema:"header"`
}

// DefaultOptions returns four-space indentation, LF line endings, a trailing
// newline and documentation comments.
func DefaultOptions() Options {
	return Options{
		IndentStyle:     "space",
		IndentSize:      4,
		LineEnding:      "lf",
		TrailingNewline: true,
		EmitComments:    true,
	}
}

// ParseOptions overlays key/value pairs such as indent_size=2 onto
// DefaultOptions and validates the result. Unknown keys are rejected.
func ParseOptions(values url.Values) (Options, error) {
	opts := DefaultOptions()
	if err := optionDecoder.Decode(&opts, values); err != nil {
		return Options{}, discogen.Errorf(discogen.CodeInvalidArgument, "formatting options: %v", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate reports invalid option values as a CodeInvalidArgument error.
func (o Options) Validate() error {
	return discogen.FromValidation(validate.Struct(o))
}

func (o Options) indent() string {
	if o.IndentStyle == "tab" {
		return "\t"
	}
	n := o.IndentSize
	if n <= 0 {
		n = 4
	}
	return strings.Repeat(" ", n)
}

func (o Options) newline() string {
	if o.LineEnding == "crlf" {
		return "\r\n"
	}
	return "\n"
}
