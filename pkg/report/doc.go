// Package report runs the versiontheca operations over one or more version
// strings and packages the results as reports.
//
// A Builder is bound to a dialect. Each operation returns a report carrying
// a header.Header envelope, ready to be written by pkg/serializer or returned
// by the HTTP service:
//
//	b := report.NewBuilder(version.DialectDebian)
//
//	canon, err := b.Canonicalize(ctx, []string{"0:1.2.0-1", "2.30+dfsg-1"})
//	cmp, err := b.Compare(ctx, "1.0~rc1", "<", "1.0")
//	step, err := b.Step(ctx, report.DirectionNext, []string{"1:2.3-4"}, 1, "")
//	sorted, err := b.Sort(ctx, []string{"1.10", "1.9", "1.0~rc1"}, false)
//
// Errors are pkg/errors StructuredErrors: INVALID_REQUEST for bad input
// shapes, INVALID_VERSION for parse failures and LIMIT_REACHED when a
// version cannot be stepped any further. Canonicalize and Step report per
// version failures inside the report instead of failing the whole call.
package report
