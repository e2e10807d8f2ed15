package analyze

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydra-jsonld/internal/diagnostic"
	"hydra-jsonld/jsonld"
)

// parseTypeDoc parses src and returns the doc comment of its first type.
func parseTypeDoc(t *testing.T, src string) *ast.CommentGroup {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "x.go", "package x\n\n"+src, parser.ParseComments)
	require.NoError(t, err)

	for _, decl := range f.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			return specDoc(gd.Specs[0].(*ast.TypeSpec).Doc, gd)
		}
	}

	require.Fail(t, "no type declaration")

	return nil
}

func newTestParser() (*directiveParser, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	return &directiveParser{
		diags: diags,
		pos:   func(*ast.Comment) string { return "x.go" },
	}, diags
}

func TestDirectiveParser_TypeDirectives(t *testing.T) {
	doc := parseTypeDoc(t, `// Offer is sold.
//
//jsonld:vocab http://example.org/offers/
//jsonld:expose Offering
//jsonld:terms gr=http://purl.org/goodrelations/v1#, price = http://schema.org/price
//jsonld:terms seller=http://schema.org/seller
type Offer struct{}
`)

	p, diags := newTestParser()
	d := p.parse(doc, "x.Offer", directiveVocab, directiveExpose, directiveTerm, directiveTerms)

	assert.Empty(t, diags.All())
	assert.Equal(t, Declarations{
		Vocab:  "http://example.org/offers/",
		Expose: "Offering",
		Terms: []jsonld.TermDecl{
			{Define: "gr", As: "http://purl.org/goodrelations/v1#"},
			{Define: "price", As: "http://schema.org/price"},
			{Define: "seller", As: "http://schema.org/seller"},
		},
	}, d)
}

func TestDirectiveParser_IgnoresOrdinaryComments(t *testing.T) {
	doc := parseTypeDoc(t, `// jsonld:vocab is only a directive without the space.
//go:generate echo
type T struct{}
`)

	p, diags := newTestParser()
	d := p.parse(doc, "x.T", directiveVocab)

	assert.True(t, d.IsZero())
	assert.Empty(t, diags.All())
}

func TestDirectiveParser_Problems(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		allowed  []string
		wantCode string
		isError  bool
	}{
		{
			name:     "not allowed here",
			doc:      "//jsonld:expose Label",
			allowed:  []string{directiveVocab},
			wantCode: "unknown_directive",
		},
		{
			name:     "unknown directive",
			doc:      "//jsonld:context x",
			allowed:  []string{directiveVocab},
			wantCode: "unknown_directive",
		},
		{
			name:     "missing argument",
			doc:      "//jsonld:vocab",
			allowed:  []string{directiveVocab},
			wantCode: "empty_directive",
			isError:  true,
		},
		{
			name:     "vocab twice",
			doc:      "//jsonld:vocab a\n//jsonld:vocab b",
			allowed:  []string{directiveVocab},
			wantCode: "duplicate_directive",
			isError:  true,
		},
		{
			name:     "term twice",
			doc:      "//jsonld:term a=b\n//jsonld:term c=d",
			allowed:  []string{directiveTerm},
			wantCode: "duplicate_directive",
			isError:  true,
		},
		{
			name:     "malformed term",
			doc:      "//jsonld:term a",
			allowed:  []string{directiveTerm},
			wantCode: "malformed_term",
			isError:  true,
		},
		{
			name:     "empty terms entry",
			doc:      "//jsonld:terms a=b,",
			allowed:  []string{directiveTerms},
			wantCode: "malformed_term",
			isError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := parseTypeDoc(t, tt.doc+"\ntype T struct{}\n")

			p, diags := newTestParser()
			p.parse(doc, "x.T", tt.allowed...)

			all := diags.All()
			require.Len(t, all, 1, diags.Error())
			assert.Equal(t, tt.wantCode, all[0].Code)
			assert.Equal(t, tt.isError, diags.HasErrors())
			assert.Equal(t, "x.go", all[0].Pos)
		})
	}
}

func TestDirectiveParser_TermAndTermsKept(t *testing.T) {
	doc := parseTypeDoc(t, "//jsonld:term a=b\n//jsonld:terms c=d\ntype T struct{}\n")

	p, diags := newTestParser()
	d := p.parse(doc, "x.T", directiveTerm, directiveTerms)

	// the conflict is reported by Validate
	assert.Empty(t, diags.All())
	assert.Equal(t, &jsonld.TermDecl{Define: "a", As: "b"}, d.Term)
	assert.Len(t, d.Terms, 1)
}

func TestSplitDirective(t *testing.T) {
	name, arg, ok := splitDirective("//jsonld:vocab   http://schema.org/  ")
	assert.True(t, ok)
	assert.Equal(t, "vocab", name)
	assert.Equal(t, "http://schema.org/", arg)

	_, _, ok = splitDirective("//jsonld:")
	assert.False(t, ok)

	_, _, ok = splitDirective("// regular comment")
	assert.False(t, ok)
}

func TestDirectiveParser_UnknownDirectiveHint(t *testing.T) {
	doc := parseTypeDoc(t, "//jsonld:vocabs http://schema.org/\ntype T struct{}\n")

	p, diags := newTestParser()
	p.parse(doc, "x.T", knownDirectives...)

	require.Len(t, diags.Warnings, 1)
	assert.Contains(t, diags.Warnings[0].Message, "did you mean vocab?")
}
