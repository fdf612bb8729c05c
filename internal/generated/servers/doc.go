// Package servers holds the transport types, the ServerInterface and the echo
// route wrapper for the API described in api/openapi.yaml. The layout follows
// oapi-codegen's echo output so handlers implement ServerInterface the usual
// way, but the file is maintained by hand: request schemas leave field
// presence to the form validator, which oapi-codegen would turn into pointer
// fields. Keep server.go in step with api/openapi.yaml when either changes.
package servers
