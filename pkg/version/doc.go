// Package version parses, canonicalizes, compares and steps version strings
// written in several dialects.
//
// # Overview
//
// A version is an ordered list of at most MaxParts parts. Each part is an
// unsigned 32 bit integer or a string, remembers the separator that preceded
// it and may carry a kind tag (epoch, revision or Roman numeral).
//
// Supported dialects:
//
//   - basic: integers separated by periods ("1.2.3")
//   - decimal: one or two integers read as a decimal number ("1.05")
//   - debian: [epoch:]upstream[-revision] with dpkg ordering ("1:2.3~rc1-4")
//   - rpm: [epoch:]version[-release] with rpmvercmp ordering ("2.0^git1-1")
//   - roman: Roman numerals where numbers are expected ("III.xii")
//   - unicode: any character other than the period ("1.β.3")
//
// # Usage
//
// Parse and canonicalize:
//
//	v, err := version.ParseVersion(version.DialectDebian, "0:1.2.0-1")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2-1
//
// Compare versions, possibly of different dialects:
//
//	a := version.MustParseVersion(version.DialectRPM, "1.1q")
//	b := version.MustParseVersion(version.DialectRPM, "1.2")
//	fmt.Println(a.Less(b)) // Output: true
//
// Compute the next version at a position, bounded by a format:
//
//	v := version.MustParseVersion(version.DialectRPM, "1.3.2")
//	v.SetFormat(version.MustParseVersion(version.DialectRPM, "9.9.9z.9"))
//	_ = v.Next(4)
//	fmt.Println(v.String()) // Output: 1.3.2A.1
//
// # Next and Previous
//
// Position 0 is the major part. Missing positions are created first, typed
// after the format (integer 0 or a string of 'A'). Next carries into the
// parts on the left when a part reaches its ceiling, which is the format part
// at the same position or, without one, 4294967295 or "z". Previous borrows
// the same way and resets exhausted parts to their ceiling. For Debian and
// RPM only the upstream parts move: the epoch and the revision never change.
//
// # Error Handling
//
// Recoverable failures are returned as errors wrapping the package sentinel
// errors (ErrEmptyInput, ErrUnexpectedCharacter, ErrMaximumLimit...). A
// failed Set, Next or Previous leaves the Version invalid and empty.
//
// Broken call contracts, such as a negative position, panic with an error
// wrapping ErrInvalidParameter.
//
// # Concurrency
//
// A Version must not be mutated concurrently. Comparing two parsed versions
// does not mutate them and is safe from several goroutines.
package version
