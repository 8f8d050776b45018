// Package typedesc is the type-descriptor façade used by the schema graph.
//
// A descriptor is a go/types.Type. Two backends produce descriptors:
//   - the static backend (internal/analyze) loads Go packages and keeps
//     generic declarations with their type parameters (slots);
//   - the dynamic backend (Bridge) mirrors runtime reflect types into
//     go/types. Runtime types are always instantiated, so every slot is
//     already substituted.
//
// Key types and helpers:
//   - ID: package import path + type name of a declaring type
//   - Kind: structural classification (leaf/object/collection/map/array)
//   - Key: canonical type string, identical for both backends
//   - IsParameterized, TypeArguments, Origin, ComponentType, UpperBound
package typedesc
