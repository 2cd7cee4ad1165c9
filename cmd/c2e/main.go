// c2e compiles declarative character-transcoding rule sets (codecs) and
// generates encoding routines for many output languages from one source.
//
// Usage:
//
//	# Generate encoders for every language pack
//	c2e generate --codec-dir codecs --template-dir templates
//
//	# Validate codec documents
//	c2e lint --dir codecs
//
//	# Inspect a compiled codec's syntax tree
//	c2e show --file codecs/html.c2e
//
//	# Regenerate on changes
//	c2e generate --watch
package main

func main() {
	Execute()
}
