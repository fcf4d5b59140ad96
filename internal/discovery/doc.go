// Package discovery implements the UDP broadcast probe from §4.7 of the
// wire contract: send "WING?" to the local broadcast address on port
// 2222, and collect the CSV responses devices send back.
package discovery
