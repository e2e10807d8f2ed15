package jsonld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldHelpers(t *testing.T) {
	var nilPrice *float64
	price := 9.5

	assert.Nil(t, Deref(nilPrice))
	assert.Equal(t, 9.5, Deref(&price))

	var nilNames []string
	assert.Nil(t, Slice(nilNames))
	assert.Equal(t, []any{"a", "b"}, Slice([]string{"a", "b"}))

	var nilPtrs []*float64
	assert.Nil(t, Pointers(nilPtrs))
	assert.Equal(t, []any{9.5, nil}, Pointers([]*float64{&price, nil}))
}

func TestSerialize_PointerHelpers(t *testing.T) {
	price := 3.0
	var missing *float64

	doc, err := tree(NewSerializer(), node(offerType,
		field("price", Deref(&price)),
		field("discount", Deref(missing)),
		field("history", Pointers([]*float64{&price, nil})),
		field("offers", Slice([]testNode{node(offerType)})),
	))
	require.NoError(t, err)

	v, _ := doc.Get("price")
	assert.Equal(t, 3.0, v)

	v, _ = doc.Get("discount")
	assert.Nil(t, v)

	v, _ = doc.Get("history")
	assert.Equal(t, []any{3.0, nil}, v)

	// same vocabulary, no terms: no nested context
	v, _ = doc.Get("offers")
	require.Len(t, v, 1)
	assert.Equal(t, []string{AtType}, v.([]any)[0].(*Object).Names())
}
