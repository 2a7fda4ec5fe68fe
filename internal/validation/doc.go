// Package validation checks partial resource payloads before they reach a handler.
//
// Every field rule runs; violations accumulate in rule order and are reported together.
// The only short-circuit is an empty payload, which yields a single "empty request body"
// violation. Validators never mutate their input: default values for absent enumerated
// fields are written to the copy returned in Result.Payload.
package validation
