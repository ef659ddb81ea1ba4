// Package cache provides SQLite-based persistence for conversion records.
//
// A record pairs a file path with the SHA-256 hash of its content and a
// fingerprint of the conversion configuration. When an in-place run finds a
// record matching all three, the file was already converted under the same
// settings and is skipped.
//
// # Basic Usage
//
//	store, err := cache.New("~/.docshift/cache.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	hit, err := store.Lookup(ctx, path, hash, cfg.Fingerprint())
//
// # Build Variants
//
// Two SQLite drivers are supported via build tags: the default pure Go
// modernc.org/sqlite driver, and github.com/mattn/go-sqlite3 when built
// with CGO and the sqlite_cgo tag.
package cache
