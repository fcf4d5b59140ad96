// Package node implements the node data model: the tagged Data union
// with change-detecting setters, and the Definition record emitted by
// opcode 0xDF.
//
// Ownership boundary:
//   - Data (absent/string/int32/float32 tagged value, cross-tag coercion)
//   - Definition (metadata record: bounds, enum members, flags)
package node
