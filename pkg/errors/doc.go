// Package errors provides structured error types for programmatic error
// handling in the layers built on top of the version package.
//
// Example usage:
//
//	v, err := version.ParseVersion(version.DialectDebian, input)
//	if err != nil {
//	    return errors.WrapWithContext(
//	        errors.ErrCodeInvalidVersion,
//	        "failed to parse version",
//	        err,
//	        map[string]any{"input": input},
//	    )
//	}
//
// Errors coming straight from the version package can be classified with
// WrapVersion, and CodeOf recovers the code anywhere in a wrapped chain.
package errors
