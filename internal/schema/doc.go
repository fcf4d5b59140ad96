// Package schema loads the generated name<->id table and exposes the
// two lookups the wire protocol needs: NameToID and IDToName. The table
// content itself (the actual device parameter paths) is a build-time
// artifact this module does not ship; callers supply it via Load.
package schema
