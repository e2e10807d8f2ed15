package jsonld

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"hydra-jsonld/options"
)

// Option configures a Serializer.
type Option func(*serializerConfig)

type serializerConfig struct {
	mixins       MixinSource
	defaultVocab string
	features     options.FeatureEnum
	indent       string
}

// WithMixins sets the source of override metadata.
func WithMixins(m MixinSource) Option {
	return func(c *serializerConfig) { c.mixins = m }
}

// WithDefaultVocab replaces http://schema.org/ as the fallback vocabulary.
func WithDefaultVocab(vocab string) Option {
	return func(c *serializerConfig) { c.defaultVocab = vocab }
}

// WithFeatures enables optional behavior.
func WithFeatures(f options.FeatureEnum) Option {
	return func(c *serializerConfig) { c.features |= f }
}

// WithIndent sets the indentation used by Marshal and enables FeatureIndent.
func WithIndent(indent string) Option {
	return func(c *serializerConfig) {
		c.indent = indent
		c.features |= options.FeatureIndent
	}
}

// Serializer writes Go values as JSON-LD. It is immutable and safe for
// concurrent use; every call gets its own vocabulary stack.
type Serializer struct {
	resolver *Resolver
	features options.FeatureEnum
	indent   string
}

// NewSerializer creates a Serializer.
func NewSerializer(opts ...Option) *Serializer {
	cfg := serializerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.features.Has(options.FeatureIndent) && cfg.indent == "" {
		cfg.indent = "\t"
	}

	return &Serializer{
		resolver: NewResolver(ResolverConfig{
			Mixins:              cfg.mixins,
			DefaultVocab:        cfg.defaultVocab,
			MemberTermsOverride: cfg.features.Has(options.FeatureMemberTermsOverride),
		}),
		features: cfg.features,
		indent:   cfg.indent,
	}
}

// Resolver returns the metadata resolver used by s.
func (s *Serializer) Resolver() *Resolver {
	return s.resolver
}

var defaultSerializer = NewSerializer()

// Marshal serializes v with a default Serializer.
func Marshal(v any) ([]byte, error) {
	return defaultSerializer.Marshal(v)
}

// Marshal serializes v to JSON. No output is returned on error.
func (s *Serializer) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Serialize(NewJSONWriter(&buf, s.indent), v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Serialize writes v to w. A fresh vocabulary stack is allocated for the call.
func (s *Serializer) Serialize(w Writer, v any) error {
	return s.writeValue(w, v, NewStack(), "")
}

// FieldError locates a failure in the serialized graph.
type FieldError struct {
	Path string // e.g. "Product.offers[0].price"
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("jsonld: %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func wrapPath(path string, err error) error {
	var fe *FieldError
	if err == nil || errors.As(err, &fe) {
		return err
	}

	if path == "" {
		path = "$"
	}

	return &FieldError{Path: path, Err: err}
}

// serializeNode writes one node. Metadata and terms are resolved before any
// output so that declaration errors leave no partial node behind. An inline
// node writes its members into the enclosing object.
func (s *Serializer) serializeNode(w Writer, n Node, stack *Stack, inline bool, path string) error {
	meta, err := s.resolver.Resolve(n)
	if err != nil {
		return wrapPath(path, err)
	}

	fields := n.LDFields()
	terms := collectMemberTerms(meta.Terms, fields, s.resolver.memberOverride)

	if path == "" {
		path = meta.Type
	}

	if !inline {
		if err := w.StartObject(); err != nil {
			return wrapPath(path, err)
		}
	}

	_, err = stack.Enter(w, meta.Vocab, terms)
	defer stack.Leave()

	if err != nil {
		return wrapPath(path, err)
	}

	if err := writeStringField(w, AtType, meta.Type); err != nil {
		return wrapPath(path, err)
	}

	if err := s.writeFields(w, fields, stack, path); err != nil {
		return err
	}

	if !inline {
		if err := w.EndObject(); err != nil {
			return wrapPath(path, err)
		}
	}

	return nil
}

func (s *Serializer) writeFields(w Writer, fields []Field, stack *Stack, path string) error {
	for _, f := range fields {
		fieldPath := path + "." + f.Name

		if f.Inline {
			if isNil(f.Value) {
				continue
			}

			n, ok := f.Value.(Node)
			if !ok {
				return wrapPath(fieldPath, fmt.Errorf("%w: inline %T is not a node", ErrUnsupportedValue, f.Value))
			}

			if err := s.serializeNode(w, n, stack, true, fieldPath); err != nil {
				return err
			}

			continue
		}

		if isNil(f.Value) && s.features.Has(options.FeatureOmitNil) {
			continue
		}

		if f.OmitEmpty && isEmptyValue(f.Value) {
			continue
		}

		if err := w.Name(f.Name); err != nil {
			return wrapPath(fieldPath, err)
		}

		if err := s.writeValue(w, f.Value, stack, fieldPath); err != nil {
			return err
		}
	}

	return nil
}

func (s *Serializer) writeValue(w Writer, v any, stack *Stack, path string) error {
	if isNil(v) {
		// a nil *T still satisfies Node when T has value receivers
		return wrapPath(path, w.Null())
	}

	var err error

	switch v := v.(type) {
	case nil:
		err = w.Null()
	case Node:
		return s.serializeNode(w, v, stack, false, path)
	case Enum:
		err = w.String(v.EnumName())
	case string:
		err = w.String(v)
	case bool:
		err = w.Bool(v)
	case int:
		err = w.Int(int64(v))
	case int8:
		err = w.Int(int64(v))
	case int16:
		err = w.Int(int64(v))
	case int32:
		err = w.Int(int64(v))
	case int64:
		err = w.Int(v)
	case uint:
		err = w.Uint(uint64(v))
	case uint8:
		err = w.Uint(uint64(v))
	case uint16:
		err = w.Uint(uint64(v))
	case uint32:
		err = w.Uint(uint64(v))
	case uint64:
		err = w.Uint(v)
	case float32:
		err = w.Float(float64(v))
	case float64:
		err = w.Float(v)
	case time.Time:
		err = w.String(v.Format(time.RFC3339Nano))
	case time.Duration:
		err = w.String(v.String())
	case []any:
		return s.writeArray(w, len(v), func(i int) any { return v[i] }, stack, path)
	case []Node:
		return s.writeArray(w, len(v), func(i int) any { return v[i] }, stack, path)
	case []string:
		return s.writeArray(w, len(v), func(i int) any { return v[i] }, stack, path)
	case fmt.Stringer:
		err = w.String(v.String())
	default:
		err = writeScalar(w, reflect.ValueOf(v))
	}

	return wrapPath(path, err)
}

// writeScalar writes values of named types whose underlying type is a string,
// bool or number, e.g. type Price float64.
func writeScalar(w Writer, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.String:
		return w.String(rv.String())
	case reflect.Bool:
		return w.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return w.Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return w.Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return w.Float(rv.Float())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
	}
}

func (s *Serializer) writeArray(w Writer, n int, at func(int) any, stack *Stack, path string) error {
	if err := w.StartArray(); err != nil {
		return wrapPath(path, err)
	}

	for i := range n {
		if err := s.writeValue(w, at(i), stack, path+"["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}

	return wrapPath(path, w.EndArray())
}

// isNil reports whether v is nil or a nil pointer, map, slice or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// isEmptyValue follows encoding/json's omitempty rules, plus the zero time.
func isEmptyValue(v any) bool {
	if isNil(v) {
		return true
	}

	if t, ok := v.(time.Time); ok {
		return t.IsZero()
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.String, reflect.Array, reflect.Map, reflect.Slice:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	default:
		return false
	}
}
