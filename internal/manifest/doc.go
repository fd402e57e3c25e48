// Package manifest builds the content manifest for a static site tree.
// A manifest lists every tracked file (name plus directory path relative
// to the content root) and every directory level that contains a tracked
// file, in deterministic sorted order.
//
// # Manifest Format
//
// The serialized manifest is a JSON document with exactly two keys:
//
//	{
//	  "files": [ { "name": "a.txt", "path": "" }, ... ],
//	  "directories": [ "sub", ... ]
//	}
//
// # Excluded Subtrees
//
// Top-level directories named in the exclusion set (by default, "abyss")
// are not traversed: the site serves their listings lazily at runtime.
// The directory itself is still recorded as a marker so the consumer
// knows the subtree exists.
//
// # Usage
//
// Collect a manifest from a content directory:
//
//	builder := manifest.NewBuilder(manifest.BuilderOptions{
//	    ContentDir: "site/content",
//	})
//	m, err := builder.Collect(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrContentDirNotFound: content directory does not exist
//   - ErrNotADirectory: content path exists but is not a directory
package manifest
