// Package connection owns the TCP connection lifecycle: the
// channel-switch handshake, the keep-alive discipline, the single
// reader goroutine's event loop, and the thin EventSink callback
// adapter over the decoder's native event enum.
//
// Ownership boundary:
//   - dial/handshake/close sequencing (§4.6 of the wire contract)
//   - per-connection keep-alive timestamp, never a package-level one
//   - Read's blocking event loop and the EventSink adapter
package connection
