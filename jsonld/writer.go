package jsonld

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Writer receives structured output events. Object members are written as a
// Name followed by exactly one value (scalar, object or array).
type Writer interface {
	StartObject() error
	EndObject() error
	StartArray() error
	EndArray() error
	Name(name string) error
	String(s string) error
	Bool(b bool) error
	Int(i int64) error
	Uint(u uint64) error
	Float(f float64) error
	Null() error
}

func writeStringField(w Writer, name, value string) error {
	if err := w.Name(name); err != nil {
		return err
	}

	return w.String(value)
}

// JSONWriter streams events as JSON text.
type JSONWriter struct {
	enc *jsontext.Encoder
}

// NewJSONWriter creates a JSONWriter on out. A non-empty indent produces
// multi-line output.
func NewJSONWriter(out io.Writer, indent string) *JSONWriter {
	opts := []jsontext.Options{
		// inlined nodes repeat @context and @type inside their parent
		jsontext.AllowDuplicateNames(true),
	}
	if indent != "" {
		opts = append(opts, jsontext.WithIndent(indent))
	}

	return &JSONWriter{enc: jsontext.NewEncoder(out, opts...)}
}

func (j *JSONWriter) StartObject() error     { return j.enc.WriteToken(jsontext.BeginObject) }
func (j *JSONWriter) EndObject() error       { return j.enc.WriteToken(jsontext.EndObject) }
func (j *JSONWriter) StartArray() error      { return j.enc.WriteToken(jsontext.BeginArray) }
func (j *JSONWriter) EndArray() error        { return j.enc.WriteToken(jsontext.EndArray) }
func (j *JSONWriter) Name(name string) error { return j.enc.WriteToken(jsontext.String(name)) }
func (j *JSONWriter) String(s string) error  { return j.enc.WriteToken(jsontext.String(s)) }
func (j *JSONWriter) Bool(b bool) error      { return j.enc.WriteToken(jsontext.Bool(b)) }
func (j *JSONWriter) Int(i int64) error      { return j.enc.WriteToken(jsontext.Int(i)) }
func (j *JSONWriter) Uint(u uint64) error    { return j.enc.WriteToken(jsontext.Uint(u)) }
func (j *JSONWriter) Float(f float64) error  { return j.enc.WriteToken(jsontext.Float(f)) }
func (j *JSONWriter) Null() error            { return j.enc.WriteToken(jsontext.Null) }
