// Package wordcalc evaluates arithmetic written out in Russian words.
//
// An expression is a sequence of words separated by spaces: number words
// such as "сто двадцать три", operators "плюс", "минус", "умножить на" and
// "поделить на", and the brackets "(" and ")". Consecutive number words are
// read as one numeral, so "тысяча двести тридцать четыре" is 1234. Operators
// have the usual precedence and associate to the left, and a minus that
// starts an expression or follows another operator or an open bracket
// negates the term after it: "минус два умножить на двадцать" is -40.
//
// Parse an expression once with Parse and evaluate it any number of times,
// or use EvalString to do both.
package wordcalc
