// Package fixtures declares the sample types used by the schema and
// population tests. They are loaded both statically (via the analyze
// loader) and at run time (via reflection), so every type here must stay
// exported and free of build constraints.
package fixtures
