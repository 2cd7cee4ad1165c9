// Package codec compiles declarative per-character transcoding rule sets
// into ASTs and aggregates them for code generation.
//
// A codec document names an output target and an ordered list of
// (guard, emitter) rules; compilation produces a Codec holding the target
// name, the referenced emitter names, and a single first-match-wins rule
// chain. An Encoder registers Codecs by unique target name.
//
//	c, err := codec.ParseAndValidateFile("codecs/html.c2e")
//	if err != nil {
//		log.Fatal(err)
//	}
//	enc := codec.NewEncoder()
//	if err := enc.Add(c); err != nil {
//		log.Fatal(err)
//	}
//
// Rendering a compiled tree to target-language text is the job of
// pkg/codec/format; this package never interprets or renders trees itself.
package codec
