// Package snprintfs formats printf-style templates into fixed, caller-owned
// buffers without ever writing past them.
//
// The central entry point is [Format], which writes at most size-1 bytes of
// output into a buffer, always appends a NUL terminator, and returns the
// number of bytes it actually wrote:
//
//	buf := make([]byte, 10)
//	n, err := snprintfs.Format(buf, len(buf), "simple integer, %d", snprintfs.Int(99999))
//	// buf[:n] == "simple in", n == 9
//
// The returned count is the truncated length, not the length the output
// would have had with unlimited room. A NUL byte in the template ends it,
// the same as a NUL in a %s argument.
//
// # Conversions
//
// The recognized grammar is %(l{0,2})[diouxXscp] plus %%:
//
//   - %d %i: signed decimal
//   - %o %u %x %X: unsigned octal, decimal, lower and upper hex, no prefix
//   - %s: byte string up to its first NUL
//   - %c: a single byte
//   - %p: "0x" followed by the address in lower hex
//   - %%: a literal percent, consuming no argument
//
// Without a modifier integers are 32 bits wide. "l" and "ll" select 64 bits.
// Further "l" bytes are ignored. Field width, precision, flags and floating
// point are not supported.
//
// # Arguments
//
// Arguments are typed values built with [Int], [Uint], [Str], [Bytes],
// [Char] and [Ptr]. [ValueOf], [Values] and [Sprintf] capture plain Go
// values instead. A conversion that receives an argument of the wrong
// kind fails with [ErrArgumentType] rather than reinterpreting its bits.
//
// # Errors
//
// Truncation is not an error. A template that ends inside a specifier stops
// quietly. Unsupported conversions, missing arguments and kind mismatches
// are reported as a [*FormatError] that unwraps to one of:
//
//   - [ErrUnsupportedConversion]
//   - [ErrMissingArgument]
//   - [ErrArgumentType]
//
// The output produced before the failing specifier is still terminated
// and its length returned. A [Printer] with Lenient set skips unknown bytes
// inside a specifier instead of failing.
//
// # Self-test
//
// [Check] compares every buffer size against a reference rendering built
// on package fmt. [DefaultCases] holds the built-in suite and [LoadCases]
// reads more from YAML.
package snprintfs
