package types

import "fmt"

// InputStyle selects the grammar used to parse a docstring.
type InputStyle string

const (
	// InputGuess tries each registered grammar's match predicate against the
	// capture's lines and picks the first that accepts one.
	InputGuess   InputStyle = "guess"
	InputRest    InputStyle = "rest"
	InputEpytext InputStyle = "epytext"
)

// ParseInputStyle validates a style name from configuration or flags.
func ParseInputStyle(name string) (InputStyle, error) {
	switch s := InputStyle(name); s {
	case InputGuess, InputRest, InputEpytext:
		return s, nil
	}
	return "", fmt.Errorf("%w: input style %q", ErrUnsupportedStyle, name)
}

// OutputStyle selects the renderer used to write a docstring.
type OutputStyle string

const (
	OutputRest    OutputStyle = "rest"
	OutputEpytext OutputStyle = "epytext"
	OutputGoogle  OutputStyle = "google"
	OutputNumpy   OutputStyle = "numpy"
)

// ParseOutputStyle validates a style name from configuration or flags.
func ParseOutputStyle(name string) (OutputStyle, error) {
	switch s := OutputStyle(name); s {
	case OutputRest, OutputEpytext, OutputGoogle, OutputNumpy:
		return s, nil
	}
	return "", fmt.Errorf("%w: output style %q", ErrUnsupportedStyle, name)
}
