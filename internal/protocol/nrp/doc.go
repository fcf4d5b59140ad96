// Package nrp implements the byte source, the NRP channel demux, and
// the big-endian value codec that the command decoder/encoder build on.
//
// Ownership boundary:
//   - Source: buffered blocking read from the transport, keep-alive hook
//   - Demux: the escape-byte channel framing rules
//   - Codec: fixed-width big-endian integer/float (de)serialization
package nrp
