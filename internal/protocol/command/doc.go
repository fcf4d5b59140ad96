// Package command implements the opcode-dispatched decoder/encoder pair
// described by the wire contract's command grammar: short/long integers,
// short/long strings, floats, cursor selection, tree-navigation
// directives, and node-definition records.
//
// Ownership boundary:
//   - Decoder: opcode state machine, current-node cursor, NodeData/
//     NodeDefinition/RequestEnd event production
//   - Encoder: set/get/traversal serialization with id-field escape
//     stuffing
package command
