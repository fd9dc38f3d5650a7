package model

import "github.com/oklog/ulid/v2"

// IDLength is the length of every identifier issued by NewID.
const IDLength = ulid.EncodedSize

// NewID returns a fresh opaque identifier.
// Identifiers are URL-safe Crockford base32 strings of fixed length.
func NewID() string {
	return ulid.Make().String()
}
