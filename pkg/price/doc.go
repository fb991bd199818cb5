// Package price formats monetary values as thousands-grouped strings with
// exactly two decimal places.
//
//	s, ok := price.Format(200000)   // "200,000.00", true
//	s, ok = price.Format("1234.5")  // "1,234.50", true
//	_, ok = price.Format("abc")     // "", false
//
// Values are rounded half up (toward positive infinity) to two decimals before
// grouping. The grouping step works on the literal integer digits, so negative
// values keep the sign as the leading group ("-,123.00" for -123).
//
// The package has no state and is safe for concurrent use.
package price
