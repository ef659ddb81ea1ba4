package pyscan

// signature is the parameter shape of one def header.
type signature struct {
	args     []string
	keywords []string
	vararg   string
	kwarg    string
}

// parseSignature splits the parameter list of a def header into positional
// names, keyword names (default-valued and keyword-only), and the variadic
// names. Annotations and default expressions are discarded.
func parseSignature(header []Token) signature {
	var sig signature

	i := 0
	for i < len(header) && !(header[i].Kind == Op && header[i].Value == "(") {
		i++
	}
	if i == len(header) {
		return sig
	}
	i++

	depth := 1
	inLambda := false
	lambdaDepth := 0
	var group []Token
	var groups [][]Token
	flush := func() {
		if len(group) > 0 {
			groups = append(groups, group)
			group = nil
		}
	}

	for ; i < len(header) && depth > 0; i++ {
		t := header[i]
		if t.Kind == Op {
			switch t.Value {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
				if depth == 0 {
					continue
				}
			case ",":
				// Commas in a lambda default's own parameter list
				// do not separate parameters.
				if depth == 1 && !inLambda {
					flush()
					continue
				}
			case ":":
				if inLambda && depth == lambdaDepth {
					inLambda = false
				}
			}
		}
		if t.Kind == Name && t.Value == "lambda" && !inLambda {
			inLambda = true
			lambdaDepth = depth
		}
		group = append(group, t)
	}
	flush()

	keywordOnly := false
	for _, g := range groups {
		first := g[0]
		if first.Kind == Op {
			switch first.Value {
			case "*":
				if len(g) > 1 && g[1].Kind == Name {
					sig.vararg = g[1].Value
				}
				keywordOnly = true
				continue
			case "**":
				if len(g) > 1 && g[1].Kind == Name {
					sig.kwarg = g[1].Value
				}
				continue
			case "/":
				continue
			}
		}
		if first.Kind != Name {
			continue
		}
		if keywordOnly || hasDefault(g) {
			sig.keywords = append(sig.keywords, first.Value)
		} else {
			sig.args = append(sig.args, first.Value)
		}
	}
	return sig
}

// hasDefault reports whether a parameter group carries "= value" at the
// group's own bracket depth.
func hasDefault(group []Token) bool {
	depth := 0
	for _, t := range group {
		if t.Kind != Op {
			continue
		}
		switch t.Value {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		case "=":
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
