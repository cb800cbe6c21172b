// Package spokencalc evaluates spoken arithmetic.
//
// An utterance is the text a speech recognizer produced for one request,
// such as "ten divided by two" or "square root of sixteen". Evaluate turns it
// into a symbolic expression ("10 / 2", "sqrt 16") using the tables in
// package phrase, picks an evaluator by the first marker it finds, and
// returns a Result whose String is the value to display, or Invalid.
//
// Markers are tested in a fixed order: "outof" (percentage), "sqrt", "cbrt",
// "^", "sin", "cos", "tan", "log", "ln", and "!" (factorial). Expressions
// with no marker are parsed as arithmetic over numbers, brackets, and the
// operators + - * / %, with the usual precedence. Nothing is ever evaluated
// as code.
//
// Division by zero and any other result that is not a finite number are
// errors, as are the square root of a negative number and the factorial of a
// negative number.
package spokencalc
