// Package docwrite renders a style-agnostic Docstring back into text lines
// in one of four conventions: reST colon fields, epytext at-sign fields,
// Google sections, or numpy underlined sections.
//
// # Basic Usage
//
//	w, err := docwrite.New(types.OutputGoogle, doc, indent, cfg.Output, vararg, kwarg)
//	if err != nil {
//	    return err
//	}
//	lines, err := w.Write()
//
// The returned lines include the re-rendered opening and closing
// delimiters and are ready to splice over the capture's original line
// range.
//
// # Shared Mechanics
//
// All four renderers share line emission with per-level indentation, gluing
// the first content line onto the opening quotes (first_line), a
// re-wrapping pass bounded by max_line_length (realign), back-tick
// stripping from type text (remove_type_back_ticks), and bracketed
// inline-markup translation (convert_markup). Style differences are limited
// to field header syntax, section titles, and spacing rules.
package docwrite
