/*
Package resources resolves font assets to local file paths.

As resource loading may be a time-consuming task (a missing asset is
downloaded from a mirror), some functions in this package work in an
async/await fashion by returning a promise. Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call
later to receive the resolved resource. The call to the promise-function
will then block until resolution has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'lvfont.resources'.
func tracer() tracing.Trace {
	return tracing.Select("lvfont.resources")
}
