// Package eip1962 implements the input decoding and encoding front-end of a
// runtime-parameterized pairing engine.
//
// The packages in this module turn untrusted byte buffers into validated
// algebraic objects: prime fields over an arbitrary caller-supplied modulus,
// quadratic and cubic extension fields with precomputed Frobenius
// coefficients, curve points over the base field and its extensions, and
// reduced scalars. Every decoder consumes an exact, declared number of bytes
// and returns the unconsumed remainder so that parsers can be chained by a
// higher-level dispatcher.
//
// All parsing failures are terminal for the request and map onto the sentinel
// errors defined in this package; callers discriminate with errors.Is.
package eip1962
