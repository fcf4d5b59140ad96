// Package protocol owns the wire contract shared by the NRP byte-channel
// framing, the command opcode vocabulary, and the node data model.
//
// Ownership boundary:
//   - opcode and flag constants (§4.4/§4.5 of the wire contract)
//   - node type/unit enumerations (§3 of the wire contract)
//   - sentinel errors shared by nrp, command, node, connection, discovery
package protocol
