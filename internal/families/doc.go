// Package families holds the built-in unit family tables consumed by
// the conversion resolver: one domain.Family per physical quantity,
// with name-to-multiplier tables relative to each family's standard
// unit and alias tables for alternate spellings.
//
// The tables are data only. Conversion arithmetic and SI prefix
// expansion live in the domain package.
package families
