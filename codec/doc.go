// Package codec reads and writes the text files hopnet exchanges with users:
// training/probe sets, weight matrices and recall reports.
//
// Set format (training and probe files share it):
//
//	100 (dimension of the image vectors)
//	3 (number of the image vectors)
//
//	O O O O O
//	...
//
// Line 1 holds the dimension N and line 2 the pattern count M; anything after
// the leading integer is a comment. Patterns follow, separated by blank lines,
// either as glyph grids (FormatGlyph) or as whitespace-separated numbers
// (FormatNumeric, bipolar or binary).
//
// Weights format:
//
//	N
//	<blank>
//	N rows of N space-separated numbers
//
// Every parse failure wraps ErrMalformedRecord with the offending line number.
package codec
