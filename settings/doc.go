// Package settings holds the configuration of a population run.
//
// Settings is an immutable value: it is built once (from Defaults, a YAML
// file, or both) and passed by value into each run. YAML keys:
//
//	mode: strict                 # strict | lenient
//	seed: 12345                  # omit for a random seed per run
//	max_depth: 8                 # <= 0 disables the limit
//	after_generate: fill_nulls_and_default_primitives
//	overwrite_existing_values: true
//	collection_size: {min: 2, max: 6}
//	map_size: {min: 2, max: 6}
//	string_length: {min: 3, max: 10}
//	integer_range: {min: 1, max: 10000}
//	float_range: {min: 1, max: 10000}
//	leaf_types: ["example.com/money.Amount"]
package settings
