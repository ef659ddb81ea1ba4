// Package converter coordinates the conversion pipeline over files and
// directory trees: locate docstrings, parse each into the style-agnostic
// form, render it in the output style, and splice the replacement lines
// back into the source bottom-up so line numbers stay valid.
//
// # Basic Usage
//
//	conv := converter.New(cfg, nil)
//	stats, results, err := conv.Run(ctx, "./src", false)
//	for _, r := range results {
//	    fmt.Print(r.Diff)
//	}
//
// Run processes files concurrently with a bounded worker pool. Per-file
// failures are collected into Statistics.ErrorMessages without stopping
// the batch. With a cache.Store attached, files whose content and
// configuration are unchanged since their last in-place conversion are
// skipped.
//
// # Error Handling
//
// Within one file, a docstring that cannot be parsed is logged and left
// exactly as it was; an unsupported style aborts the file before any line
// is touched. In-place writes happen only after every docstring in the
// file has been processed.
package converter
