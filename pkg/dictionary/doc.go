// Package dictionary defines the two in-memory shapes of a hyphenation
// dictionary, Standard and Extended, and their binary encoding.
//
// A Standard dictionary holds Liang-style patterns whose tallies only mark
// break opportunities. An Extended dictionary additionally attaches an
// optional Subregion to patterns and exceptions, describing non-standard
// hyphenation where the word changes around the break (for example the
// Dutch "omaatje" -> "oma-tje").
//
// Both variants carry the Language they were built for. That tag is the only
// field loaders inspect; everything else is opaque to them.
//
// Encoding uses package bincode. Maps are written with sorted keys, so the
// same dictionary always encodes to the same bytes:
//
//	data, err := dict.MarshalBinary()
//
//	var back dictionary.Standard
//	err = back.UnmarshalBinary(data)
//
// Constructing dictionaries from pattern files is not part of this package.
package dictionary
