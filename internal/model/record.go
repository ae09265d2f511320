package model

// Record is a single parsed log record: a string-keyed tree of objects,
// arrays, and primitives as produced by encoding/json. Records are treated as
// immutable — every transform builds a new tree.
type Record = map[string]any

// Skeleton is the structural-only projection of a record: objects keep their
// normalized keys, an array of objects collapses to a single merged
// representative element, an array of primitives collapses to [], and every
// primitive becomes the empty-string placeholder.
type Skeleton = map[string]any

// FileKey is the reserved row key carrying the source file path in
// extraction output.
const FileKey = "__file__"
