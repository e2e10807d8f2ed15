// Package mixin loads linked-data overrides for types from a YAML file.
//
// A mixin replaces the vocabulary and exposed type label of a type and adds
// terms on top of those the type declares, without touching its source:
//
//	version: "1"
//	mixins:
//	  - type: hydra-jsonld/examples/store.Offer
//	    vocab: http://purl.org/goodrelations/v1#
//	    expose: Offering
//	    terms:
//	      price: http://schema.org/price
//	      seller: http://schema.org/seller
//	  - type: store.Product        # short form, resolved against loaded packages
//	    term: gtin=http://schema.org/gtin13
//
// Terms may be written as a mapping, as a list of "define=as" strings, or as
// a list of {define, as} objects. Declaring both term and terms on one mixin
// is an error, as it is for packages and types.
package mixin
