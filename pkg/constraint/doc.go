// Package constraint evaluates comparison operators and "<op> <version>"
// expressions on top of the version package.
//
// Operators may be written symbolically or as words:
//
//	==  =  eq     equal
//	!=  <> ne     not equal
//	<   lt        less than
//	<=  le        less than or equal
//	>   gt        greater than
//	>=  ge        greater than or equal
//
// Example:
//
//	c, err := constraint.Parse(version.DialectDebian, ">= 1:2.3")
//	if err != nil {
//	    return err
//	}
//	ok, err := c.Evaluate("1:2.3-4")
package constraint
