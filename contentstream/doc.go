// Package contentstream locates page content streams inside a raw PDF byte
// buffer. It is a best-effort scan over stream/endstream markers rather than
// a structured PDF object parser: it never consults the cross-reference
// table or filter dictionaries, which keeps it working on partially
// malformed or non-standard files at the cost of missing exotic layouts.
package contentstream
