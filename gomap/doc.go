// Package gomap converts between arbitrary Go values and the native
// value model using reflection. Struct fields map to mapping fields
// in declaration order, numeric slices map to 1-D dense arrays, and
// circular references are detected rather than followed.
package gomap
