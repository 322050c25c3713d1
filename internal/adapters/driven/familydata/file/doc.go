// Package file implements the driven.FamilyLoader port over TOML files.
// Each file under the families directory defines one unit family:
//
//	name = "pressure"
//	standard_unit = "Pa"
//
//	[units]
//	Pa = 1.0
//	bar = 1e5
//	atm = 101325.0
//
//	[aliases]
//	pascal = "Pa"
//
//	si_prefixable = ["Pa"]
package file
