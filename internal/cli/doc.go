// Package cli implements the utilkit command-line tool on top of the
// timefmt, price, collection and query packages.
//
//	utilkit time datetime 1508025600000
//	utilkit time template -t "{y}年{m}月{d}日 {w}" "2017-10-15 08:00:00"
//	utilkit price format 200000
//	utilkit array diff -a 1,2,3 -b 2,3,4
//	utilkit query parse -o yaml "?age=18&name=zhouck"
//	utilkit query build '{"name":"tom","age":15}'
//
// Results go to the configured writer, one per line. A helper that reports
// absence turns into ErrNoResult.
package cli
