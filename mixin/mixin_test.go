package mixin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydra-jsonld/examples/store"
	"hydra-jsonld/internal/analyze"
	"hydra-jsonld/jsonld"
)

const storeOffer = "hydra-jsonld/examples/store.Offer"

func loadStore(t *testing.T) *analyze.TypeGraph {
	t.Helper()

	graph, err := analyze.NewAnalyzer(zerolog.Nop()).LoadPackages("hydra-jsonld/examples/store")
	require.NoError(t, err)

	return graph
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(`
mixins:
  - type: hydra-jsonld/examples/store.Offer
    vocab: http://purl.org/goodrelations/v1#
    expose: Offering
    terms:
      price: http://schema.org/price
      seller: http://schema.org/seller
  - type: store.Product
    term: gtin = http://schema.org/gtin13
  - type: Product
    terms:
      - sku=http://schema.org/sku
      - define: mpn
        as: http://schema.org/mpn
`))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	require.Len(t, f.Mixins, 3)

	offer := f.Mixins[0]
	assert.Equal(t, storeOffer, offer.Type)
	assert.Equal(t, "Offering", offer.Expose)
	assert.Equal(t, TermList{
		{Define: "price", As: "http://schema.org/price"},
		{Define: "seller", As: "http://schema.org/seller"},
	}, offer.Terms)

	assert.Equal(t, &TermSpec{Define: "gtin", As: "http://schema.org/gtin13"}, f.Mixins[1].Term)
	assert.Equal(t, TermList{
		{Define: "sku", As: "http://schema.org/sku"},
		{Define: "mpn", As: "http://schema.org/mpn"},
	}, f.Mixins[2].Terms)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "mixins:\n  - type: a.B\n    vocabulary: x\n"},
		{"malformed term", "mixins:\n  - type: a.B\n    term: gtin\n"},
		{"incomplete term mapping", "mixins:\n  - type: a.B\n    term: {define: gtin}\n"},
		{"terms scalar", "mixins:\n  - type: a.B\n    terms: gtin\n"},
		{"not yaml", "mixins: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Empty(t, f.Mixins)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nmixins:\n  - type: a/b.C\n    expose: D\n"), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, f.Mixins, 1)
	assert.Equal(t, "D", f.Mixins[0].Expose)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read mixin file")
}

func TestMarshal_RoundTripsShortTerms(t *testing.T) {
	out, err := Marshal(&File{Version: "1", Mixins: []Mixin{{
		Type: "a/b.C",
		Term: &TermSpec{Define: "x", As: "http://example.org/x"},
	}}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "term: x=http://example.org/x")
}

func TestResolveTypeID(t *testing.T) {
	graph := loadStore(t)

	for _, ref := range []string{storeOffer, "store.Offer", "Offer"} {
		info := ResolveTypeID(ref, graph)
		require.NotNil(t, info, ref)
		assert.Equal(t, "Offer", info.ID.Name)
	}

	assert.Nil(t, ResolveTypeID("warehouse.Offer", graph))
	assert.Nil(t, ResolveTypeID("store.", graph))
	assert.Nil(t, ResolveTypeID("", graph))
	assert.Nil(t, ResolveTypeID("Offer", nil))
}

func TestResolveTypeID_Ambiguous(t *testing.T) {
	graph := analyze.NewTypeGraph()
	for _, pkg := range []string{"a/shop", "b/shop"} {
		id := analyze.TypeID{PkgPath: pkg, Name: "Offer"}
		graph.Types[id] = &analyze.TypeInfo{ID: id, Kind: analyze.TypeKindStruct}
	}

	assert.Nil(t, ResolveTypeID("shop.Offer", graph))
	assert.NotNil(t, ResolveTypeID("a/shop.Offer", graph))
}

func TestValidate(t *testing.T) {
	graph := loadStore(t)

	f := &File{Version: "1", Mixins: []Mixin{
		{Type: "store.Offer", Expose: "Offering"},
		{Type: "Offer", Vocab: "http://example.org/"},
		{Type: "store.Missing", Vocab: "http://example.org/"},
		{Type: "store.ItemAvailability", Vocab: "http://example.org/"},
		{Type: "store.Product"},
		{},
	}}

	diags := Validate(f, graph)

	codes := make([]string, 0, len(diags.All()))
	for _, d := range diags.All() {
		codes = append(codes, d.Code)
	}

	assert.Equal(t, []string{"duplicate_mixin", "type_not_found", "not_a_struct", "missing_type", "empty_mixin"}, codes)
}

func TestValidate_TermConflicts(t *testing.T) {
	graph := loadStore(t)

	f := &File{Version: "2", Mixins: []Mixin{
		{
			Type:  "store.Offer",
			Term:  &TermSpec{Define: "a", As: "b"},
			Terms: TermList{{Define: "c", As: "d"}},
		},
		{
			Type:  "store.Product",
			Terms: TermList{{Define: "c", As: "d"}, {Define: "c", As: "e"}},
		},
	}}

	diags := Validate(f, graph)

	require.Len(t, diags.Errors, 3)
	assert.Equal(t, "unsupported_version", diags.Errors[0].Code)
	assert.Equal(t, string(jsonld.ErrCodeConflictingTermDecl), diags.Errors[1].Code)
	assert.Equal(t, "mixin of store.Offer", diags.Errors[1].Scope)
	assert.Equal(t, string(jsonld.ErrCodeDuplicateTerm), diags.Errors[2].Code)
	assert.Equal(t, "c", diags.Errors[2].Member)

	assert.NotEmpty(t, Validate(nil, graph).Errors)
	assert.NotEmpty(t, Validate(f, nil).Errors)
}

func TestSet_OverridesSerialization(t *testing.T) {
	f, err := Parse([]byte(`
mixins:
  - type: store.Offer
    vocab: http://purl.org/goodrelations/v1#
    expose: Offering
    term: price=http://schema.org/price
`))
	require.NoError(t, err)

	set, err := Resolve(f, loadStore(t))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	out, err := jsonld.NewSerializer(jsonld.WithMixins(set)).Marshal(store.Product{
		Name:   "Widget",
		Offers: &store.Offer{Price: 3},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"@context": {"@vocab": "http://schema.org/"},
		"@type": "Product",
		"name": "Widget",
		"productID": "",
		"offers": {
			"@context": {
				"@vocab": "http://purl.org/goodrelations/v1#",
				"price": "http://schema.org/price"
			},
			"@type": "Offering",
			"price": 3,
			"priceCurrency": ""
		}
	}`, string(out))
}

func TestNewSet(t *testing.T) {
	set, err := NewSet(&File{Mixins: []Mixin{{Type: storeOffer, Expose: "Offering"}}})
	require.NoError(t, err)

	a := set.MixinFor(jsonld.TypeID{PkgPath: "hydra-jsonld/examples/store", Name: "Offer"})
	require.NotNil(t, a)
	assert.Equal(t, "Offering", a.Expose)
	assert.Nil(t, set.MixinFor(jsonld.TypeID{Name: "Offer"}))

	_, err = NewSet(&File{Mixins: []Mixin{{Type: "Offer"}}})
	assert.Error(t, err)

	_, err = NewSet(&File{Mixins: []Mixin{{Type: storeOffer}, {Type: storeOffer}}})
	assert.ErrorContains(t, err, "already has a mixin")

	var nilSet *Set
	assert.Nil(t, nilSet.MixinFor(jsonld.TypeID{}))
	assert.Zero(t, nilSet.Len())
}

func TestValidate_SuggestsType(t *testing.T) {
	diags := Validate(&File{Version: "1", Mixins: []Mixin{{Type: "store.Ofer", Expose: "X"}}}, loadStore(t))

	require.Len(t, diags.Errors, 1)
	assert.Contains(t, diags.Errors[0].Message, "did you mean store.Offer?")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mixins.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mixins:\n  - type: "+storeOffer+"\n    expose: Offering\n"), 0o600))

	set, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "Offering", set.MixinFor(jsonld.TypeID{PkgPath: "hydra-jsonld/examples/store", Name: "Offer"}).Expose)

	future := filepath.Join(dir, "future.yaml")
	require.NoError(t, os.WriteFile(future, []byte("version: \"2\"\n"), 0o600))

	_, err = Open(future)
	assert.ErrorContains(t, err, "unsupported version")

	_, err = Open(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
