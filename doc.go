// Package quillml reads QuillML documents.
//
// QuillML is a line oriented configuration language with physical
// dimensions on numbers, homogeneous arrays and nested groups:
//
//	# detector setup
//	energy = 6.5 TeV
//	radius = [30, 60, 90] mm
//	tracker {
//	  layers = 6; name = pixel
//	}
//
// ReadFile parses a document into a File. ApplyPatch and MergePatch edit a
// tree through its JSON dict form, and Match tests one tree against a
// pattern. Packages under this module do the rest: ir holds entry trees,
// parse builds them, encode renders them as canonical text, JSON or YAML,
// libdiff compares them, eval runs expressions over them and gomap decodes
// them into Go values.
package quillml
