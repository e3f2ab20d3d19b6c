// Package rpn evaluates arithmetic expressions written in reverse Polish
// notation where every operand is a single decimal digit.
//
// "12+" is 1 + 2. "893/*4+" is 8 * (9 / 3) + 4. Whitespace is ignored
// anywhere, so "8 9 3 / * 4 +" is the same expression. There are no
// multi-digit numbers: "12" is two operands, and an expression which leaves
// more than one value is an error.
//
// Evaluate runs the whole pipeline on a string. Tokenize and Parse expose the
// intermediate steps, and a parsed Expr can be evaluated any number of times.
//
package rpn
