package jsonld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperToCamel(t *testing.T) {
	cases := map[string]string{
		"PRE_ORDER":            "PreOrder",
		"IN_STOCK":             "InStock",
		"DISCONTINUED":         "Discontinued",
		"ONLINE_ONLY_":         "OnlineOnly",
		"__LIMITED__AVAILABLE": "LimitedAvailable",
		"out_of_stock":         "OutOfStock",
		"":                     "",
	}

	for in, want := range cases {
		assert.Equal(t, want, UpperToCamel(in), in)
	}
}

func TestCollectTerms_EnumWithoutLabel(t *testing.T) {
	n := node(offerType, Field{Name: "availability", Value: availabilityPreOrder, Enum: true})

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(n)
	require.NoError(t, err)

	assert.Equal(t, []string{"availability", "PRE_ORDER"}, terms.Keys())

	structured, _ := terms.Get("availability")
	assert.Equal(t, StructuredTerm{}, structured)

	label, _ := terms.Get("PRE_ORDER")
	assert.Equal(t, StringTerm("PreOrder"), label)
}

func TestCollectTerms_EnumWithExposedLabels(t *testing.T) {
	n := node(offerType, Field{
		Name:  "availability",
		Label: "http://schema.org/availability",
		Value: labeledPreOrder,
		Enum:  true,
	})

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(n)
	require.NoError(t, err)

	structured, _ := terms.Get("availability")
	assert.Equal(t, StructuredTerm{ID: "http://schema.org/availability"}, structured)

	label, _ := terms.Get("PRE_ORDER")
	assert.Equal(t, StringTerm("po"), label)
}

func TestCollectTerms_NilEnumContributesNothing(t *testing.T) {
	n := node(offerType, Field{Name: "availability", Label: "http://schema.org/availability", Enum: true})

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(n)
	require.NoError(t, err)
	assert.Zero(t, terms.Len())
}

func TestCollectTerms_NilEnumPointer(t *testing.T) {
	n := node(offerType, Field{Name: "availability", Value: (*availability)(nil), Enum: true})

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(n)
	require.NoError(t, err)
	assert.Zero(t, terms.Len())

	doc, err := tree(NewSerializer(), n)
	require.NoError(t, err)

	v, ok := doc.Get("availability")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestCollectTerms_EnumRecognizedWithoutFlag(t *testing.T) {
	var p *availability
	in := availabilityInStock
	p = &in

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(node(offerType, field("availability", p)))
	require.NoError(t, err)

	label, ok := terms.Get("IN_STOCK")
	require.True(t, ok)
	assert.Equal(t, StringTerm("InStock"), label)
}

func TestCollectTerms_LabeledMember(t *testing.T) {
	n := node(productType,
		Field{Name: "name", Label: "http://schema.org/name", Value: "Widget"},
		Field{Name: "sku", Value: "W-1"},
	)

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(n)
	require.NoError(t, err)

	assert.Equal(t, []string{"name"}, terms.Keys())
}

// conflicting key "k" declared on every level, plus member derived.
func precedenceFixture() (testNode, Mixins) {
	pkg := &PackageDescriptor{Path: "p", Annotations: Annotations{Terms: []TermDecl{
		{Define: "k", As: "package"},
		{Define: "pkgOnly", As: "package"},
	}}}
	td := &TypeDescriptor{ID: TypeID{PkgPath: "p", Name: "T"}, Package: pkg, Annotations: Annotations{Terms: []TermDecl{
		{Define: "k", As: "type"},
		{Define: "typeOnly", As: "type"},
	}}}
	mixins := Mixins{td.ID: {Terms: []TermDecl{
		{Define: "k", As: "mixin"},
		{Define: "mixinOnly", As: "mixin"},
	}}}

	n := node(td,
		Field{Name: "k", Label: "member", Value: "v"},
		Field{Name: "pkgOnly", Label: "member", Value: "v"},
		Field{Name: "memberOnly", Label: "member", Value: "v"},
	)

	return n, mixins
}

func TestCollectTerms_Precedence(t *testing.T) {
	n, mixins := precedenceFixture()

	terms, err := NewResolver(ResolverConfig{Mixins: mixins}).CollectTerms(n)
	require.NoError(t, err)

	want := map[string]string{
		"k":          "mixin",
		"pkgOnly":    "package",
		"typeOnly":   "type",
		"mixinOnly":  "mixin",
		"memberOnly": "member",
	}
	for name, value := range want {
		got, ok := terms.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, StringTerm(value), got, name)
	}

	assert.Equal(t, []string{"k", "pkgOnly", "typeOnly", "mixinOnly", "memberOnly"}, terms.Keys())
}

func TestCollectTerms_TypeBeatsPackage(t *testing.T) {
	n, _ := precedenceFixture()

	terms, err := NewResolver(ResolverConfig{}).CollectTerms(n)
	require.NoError(t, err)

	got, _ := terms.Get("k")
	assert.Equal(t, StringTerm("type"), got)
}

func TestCollectTerms_MemberOverride(t *testing.T) {
	n, mixins := precedenceFixture()

	terms, err := NewResolver(ResolverConfig{Mixins: mixins, MemberTermsOverride: true}).CollectTerms(n)
	require.NoError(t, err)

	for _, name := range []string{"k", "pkgOnly", "memberOnly"} {
		got, _ := terms.Get(name)
		assert.Equal(t, StringTerm("member"), got, name)
	}

	got, _ := terms.Get("typeOnly")
	assert.Equal(t, StringTerm("type"), got)
}

func TestCollectTerms_DoesNotMutateCachedMetadata(t *testing.T) {
	r := NewResolver(ResolverConfig{})
	n := node(offerType, Field{Name: "availability", Value: availabilityPreOrder, Enum: true})

	_, err := r.CollectTerms(n)
	require.NoError(t, err)

	meta, err := r.Resolve(n)
	require.NoError(t, err)
	assert.Zero(t, meta.Terms.Len())
}
