// Package transcoder converts unsegmented IPA strings into toolkit
// notation. It scans left to right, trying a two-symbol override before
// falling back to the single-symbol mapping, and stops at the first
// symbol it cannot map.
package transcoder
