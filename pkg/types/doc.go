// Package types provides shared type definitions for the docshift converter.
//
// This package defines the domain types used across docshift's components:
// raw docstring captures, the style-agnostic docstring intermediate
// representation, and the error taxonomy of the conversion pipeline.
//
// # Core Types
//
// RawCapture is one docstring found in a source file, with its exact line
// range and the owning declaration's parameter metadata:
//
//	capture := types.RawCapture{
//	    StartLine: 12,
//	    EndLine:   18,
//	    Lines:     docLines,
//	    Keywords:  []string{"timeout"},
//	}
//
// Docstring is the intermediate representation produced by a format parser
// and consumed by a format writer. It keeps document order in Elements and
// merged per-name field data in ordered tables:
//
//	doc := types.NewDocstring()
//	doc.AddArg("path", "str", []string{"The file to read."}, false)
//	doc.AddArgType("path", "str")
//
// Section elements (args, attributes, raises, return) carry no data; they
// only mark where a field section sits in the document order. A section
// marker is appended exactly once, at the first addition to its table.
//
// # Errors
//
// The pipeline's failure modes are modeled as sentinel errors so callers can
// test them with errors.Is:
//
//	if errors.Is(err, types.ErrMalformedDocstring) {
//	    // skip this capture, keep converting siblings
//	}
package types
