// Package choicesapi exposes an enumeration as a small net/http handler that
// returns JSON options for form inputs.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. Each handler serves a single
// enumeration; mount one per enum or front several with your own router.
package choicesapi
