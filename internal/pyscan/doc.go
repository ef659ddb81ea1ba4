// Package pyscan locates docstrings in Python source without executing or
// fully parsing it. A lexical scan produces an indent-aware token stream,
// a structural pass groups tokens into nested statements, and the locator
// walks that tree to find the module docstring, def and class docstrings,
// and attribute docstrings (a string statement directly following an
// assignment).
//
// # Basic Usage
//
//	captures := pyscan.NewLocator(lines).Locate()
//	for _, c := range captures {
//	    // c.Lines holds lines [c.StartLine, c.EndLine) of the source
//	}
//
// For def docstrings the capture also carries the parameter shape of the
// header: positional names, default-valued and keyword-only names, and
// the variadic names.
//
// # Error Handling
//
// Scanning is deliberately lenient. Inconsistent indentation, an
// unterminated string, or a character with no Python meaning ends the
// token stream at that point instead of failing the file, so every
// docstring before the flaw is still located.
package pyscan
