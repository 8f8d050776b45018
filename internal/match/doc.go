// Package match ranks the member names and paths of a schema graph by
// how closely they resemble a selector target that matched nothing.
//
// Key functions:
//   - NormalizeIdent: folds case and strips separators ("country_code" ~ "CountryCode")
//   - Levenshtein: edit distance between two strings
//   - Rank / Suggest: candidates ordered by normalized similarity
package match
