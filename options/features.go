package options

// FeatureEnum selects optional serializer behavior as a bit set.
type FeatureEnum int

const (
	FeatureIndent              FeatureEnum = 1 << iota // multi-line JSON output
	FeatureOmitNil                                     // skip nil field values instead of writing null
	FeatureMemberTermsOverride                         // field derived terms overwrite declared terms of the same name

	FeatureAll  = (1 << iota) - 1 // all features combined
	FeatureNone = 0               // no features selected
)

// Has reports whether all features of other are set in f.
func (f FeatureEnum) Has(other FeatureEnum) bool {
	return f&other == other
}
