package jsonld

import (
	"errors"
)

const offersVocab = "http://example.org/offers/"

var shopPackage = &PackageDescriptor{Path: "example/shop"}

var (
	productType = &TypeDescriptor{
		ID:      TypeID{PkgPath: "example/shop", Name: "Product"},
		Package: shopPackage,
	}
	offerType = &TypeDescriptor{
		ID:          TypeID{PkgPath: "example/shop", Name: "Offer"},
		Package:     shopPackage,
		Annotations: Annotations{Vocab: offersVocab},
	}
)

// testNode is a hand-written node with an arbitrary descriptor.
type testNode struct {
	td     *TypeDescriptor
	fields []Field
}

func (n testNode) LDType() *TypeDescriptor { return n.td }
func (n testNode) LDFields() []Field       { return n.fields }

func node(td *TypeDescriptor, fields ...Field) testNode {
	return testNode{td: td, fields: fields}
}

func field(name string, value any) Field {
	return Field{Name: name, Value: value}
}

type availability string

const (
	availabilityPreOrder availability = "PRE_ORDER"
	availabilityInStock  availability = "IN_STOCK"
)

func (a availability) EnumName() string  { return string(a) }
func (a availability) EnumLabel() string { return "" }

type labeledAvailability string

const labeledPreOrder labeledAvailability = "PRE_ORDER"

func (a labeledAvailability) EnumName() string { return string(a) }
func (a labeledAvailability) EnumLabel() string {
	if a == labeledPreOrder {
		return "po"
	}

	return ""
}

var errBoom = errors.New("boom")

// failingWriter fails the first time a member called failOn is named.
type failingWriter struct {
	*TreeWriter
	failOn string
}

func newFailingWriter(failOn string) *failingWriter {
	return &failingWriter{TreeWriter: NewTreeWriter(), failOn: failOn}
}

func (f *failingWriter) Name(name string) error {
	if name == f.failOn {
		return errBoom
	}

	return f.TreeWriter.Name(name)
}

// tree serializes v into a document tree.
func tree(s *Serializer, v any) (*Object, error) {
	w := NewTreeWriter()
	if err := s.Serialize(w, v); err != nil {
		return nil, err
	}

	obj, _ := w.Root().(*Object)

	return obj, nil
}
