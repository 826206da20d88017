// Package yamlmat converts between a native value model (scalars,
// ordered sequences, insertion-ordered mappings, timestamps, dense
// 1-3 dimensional arrays, a distinguished null) and YAML text. The
// low-level YAML grammar is delegated to a backing library behind
// narrow emitter and parser interfaces; this package is the thin
// convenience surface over the encode and parse pipelines.
package yamlmat
