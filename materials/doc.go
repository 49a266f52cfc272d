// Package materials is a small read-only catalog of reference material
// properties (Young's modulus, density, compressive strength) to feed the
// formula packages.
//
// The catalog ships inside the binary as YAML (go:embed) and is decoded once
// on first use; lookups are safe for concurrent use.
//
//	steel, err := materials.Lookup("steel")
//	d, err := civil.BeamDeflection(1000, 2, steel.ElasticModulus, 8.33e-6)
//
// Custom catalogs can be decoded from bytes with Parse.
package materials
