// Package analyze loads Go packages and extracts their linked-data
// declarations.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build a
// model of the structs and enums of a package together with the //jsonld:
// directives attached to them:
//
//	// Package store holds shop types.
//	//
//	//jsonld:vocab http://schema.org/
//	//jsonld:terms gr=http://purl.org/goodrelations/v1#
//	package store
//
//	//jsonld:vocab http://example.org/offers/
//	//jsonld:expose Offering
//	type Offer struct {
//		Price        float64           `json:"price"`
//		Availability *ItemAvailability `json:"availability" jsonld:"http://schema.org/availability"`
//		Seller       Seller            `json:"-" jsonld:",inline"`
//	}
//
//	type ItemAvailability string
//
//	const (
//		//jsonld:expose http://schema.org/InStock
//		InStock ItemAvailability = "IN_STOCK"
//		PreOrder ItemAvailability = "PRE_ORDER"
//	)
//
// Directives:
//   - vocab <uri>: vocabulary of a package or type
//   - expose <label>: @type label of a type, exposed label of an enum constant
//   - term <define>=<as>: a single term of a package or type
//   - terms <d1>=<a1>,<d2>=<a2>: a list of terms; may span several lines
//
// Struct tag jsonld:"<label>[,inline]" sets the exposed label of a field and
// marks nodes to be merged into their parent. Named string or integer types
// with at least one constant declared in their package are enums.
package analyze
