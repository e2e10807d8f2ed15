package analyze

import (
	"fmt"
	"go/ast"
	"slices"
	"strings"

	"hydra-jsonld/internal/diagnostic"
	"hydra-jsonld/internal/match"
	"hydra-jsonld/jsonld"
)

const directivePrefix = "//jsonld:"

// Directive names.
const (
	directiveVocab  = "vocab"
	directiveExpose = "expose"
	directiveTerm   = "term"
	directiveTerms  = "terms"
)

var knownDirectives = []string{directiveVocab, directiveExpose, directiveTerm, directiveTerms}

// directiveParser turns //jsonld: comment lines into Declarations, reporting
// malformed lines to diags. Term and terms conflicts are left to Validate.
type directiveParser struct {
	diags *diagnostic.Diagnostics
	pos   func(c *ast.Comment) string
}

// parse reads all directives of a comment group. allowed lists the directives
// valid for the scope; others are reported and ignored.
func (p *directiveParser) parse(cg *ast.CommentGroup, scope string, allowed ...string) Declarations {
	var d Declarations
	if cg == nil {
		return d
	}

	for _, c := range cg.List {
		name, arg, ok := splitDirective(c.Text)
		if !ok {
			continue
		}

		if !slices.Contains(allowed, name) {
			p.diags.AddWarning("unknown_directive",
				fmt.Sprintf("directive %q is not valid here%s", directivePrefix+name, match.Hint(name, knownDirectives)),
				scope, "").At(p.pos(c))

			continue
		}

		switch name {
		case directiveVocab:
			p.setOnce(&d.Vocab, arg, name, scope, c)
		case directiveExpose:
			p.setOnce(&d.Expose, arg, name, scope, c)
		case directiveTerm:
			if d.Term != nil {
				p.diags.AddError("duplicate_directive", "term declared twice, use terms for several terms", scope, "").At(p.pos(c))
				continue
			}

			if decl, ok := p.parseTerm(arg, scope, c); ok {
				d.Term = &decl
			}
		case directiveTerms:
			for part := range strings.SplitSeq(arg, ",") {
				if decl, ok := p.parseTerm(part, scope, c); ok {
					d.Terms = append(d.Terms, decl)
				}
			}
		}
	}

	return d
}

func (p *directiveParser) setOnce(dst *string, arg, name, scope string, c *ast.Comment) {
	if arg == "" {
		p.diags.AddError("empty_directive", fmt.Sprintf("%s needs an argument", directivePrefix+name), scope, "").At(p.pos(c))
		return
	}

	if *dst != "" {
		p.diags.AddError("duplicate_directive", fmt.Sprintf("%s declared twice", directivePrefix+name), scope, "").At(p.pos(c))
		return
	}

	*dst = arg
}

func (p *directiveParser) parseTerm(s, scope string, c *ast.Comment) (jsonld.TermDecl, bool) {
	define, as, ok := strings.Cut(strings.TrimSpace(s), "=")
	define, as = strings.TrimSpace(define), strings.TrimSpace(as)

	if !ok || define == "" || as == "" {
		p.diags.AddError("malformed_term", fmt.Sprintf("term %q is not of the form define=as", s), scope, "").At(p.pos(c))
		return jsonld.TermDecl{}, false
	}

	return jsonld.TermDecl{Define: define, As: as}, true
}

// splitDirective returns the name and argument of a //jsonld: line.
func splitDirective(text string) (name, arg string, ok bool) {
	rest, found := strings.CutPrefix(text, directivePrefix)
	if !found {
		return "", "", false
	}

	name, arg, _ = strings.Cut(strings.TrimSpace(rest), " ")

	return name, strings.TrimSpace(arg), name != ""
}
