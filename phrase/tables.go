package phrase

// Rule rewrites a phrase of one or more words to a symbol.
type Rule struct {
	Phrase string
	Symbol string
}

// Idioms are rewrites for words that recognizers run together. They apply in
// order as plain substring replacements, before any other rule.
var Idioms = []Rule{
	{"oneplus", "1 plus"},
	{"twoplus", "2 plus"},
}

// Tokens maps spoken operator and function words to canonical symbols. The
// rules apply in order, each to whole words only, so a phrase must come
// before any shorter phrase made of its words: "divided by" before "divide",
// "modulus" before "mod", "natural log" before "log".
var Tokens = []Rule{
	// Multi-word phrases.
	{"to the power of", "^"},
	{"raised to", "^"},
	{"square root of", "sqrt"},
	{"square root", "sqrt"},
	{"cube root of", "cbrt"},
	{"cube root", "cbrt"},
	{"multiplied by", "*"},
	{"divided by", "/"},
	{"out of", "outof"},
	{"natural logarithm", "ln"},
	{"natural log", "ln"},

	// Arithmetic.
	{"plus", "+"},
	{"add", "+"},
	{"minus", "-"},
	{"subtract", "-"},
	{"into", "*"},
	{"times", "*"},
	{"multiply", "*"},
	{"divide", "/"},
	{"over", "/"},
	{"modulus", "%"},
	{"mod", "%"},
	{"percentage", "%"},
	{"point", "."},
	{"power", "^"},
	{"factorial", "!"},

	// Functions.
	{"sine", "sin"},
	{"sin", "sin"},
	{"cosine", "cos"},
	{"cos", "cos"},
	{"tangent", "tan"},
	{"tan", "tan"},
	{"logarithm", "log"},
	{"log", "log"},
	{"ln", "ln"},
}

// Number is a spoken number word and its value.
type Number struct {
	Word  string
	Value int
}

// Numbers are the number words that convert to digits. Each converts alone;
// adjacent number words are not composed, so "twenty five" is "20 5".
var Numbers = []Number{
	{"zero", 0},
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
	{"ten", 10},
	{"eleven", 11},
	{"twelve", 12},
	{"thirteen", 13},
	{"fourteen", 14},
	{"fifteen", 15},
	{"sixteen", 16},
	{"seventeen", 17},
	{"eighteen", 18},
	{"nineteen", 19},
	{"twenty", 20},
	{"thirty", 30},
	{"forty", 40},
	{"fifty", 50},
	{"sixty", 60},
	{"seventy", 70},
	{"eighty", 80},
	{"ninety", 90},
	{"hundred", 100},
	{"thousand", 1000},
}

// Fillers are words dropped from the symbolic expression, so that e.g.
// "what is the sin of thirty" reads as "sin 30".
var Fillers = []string{
	"what", "what's", "whats", "is", "equals", "equal",
	"calculate", "the", "of", "please", "uh", "um",
}
