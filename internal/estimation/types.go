package estimation

// Calculator encapsulates one specific stage of the estimation (e.g. "cutting time", "gas consumption").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in Engine results.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the estimation using the provided params and returns an Estimation or an error.
	Calculate(params map[string]Param) (Estimation, error)
}

// Param represents an input for a Calculator (either user supplied or produced by a previous calculator)
type Param struct {
	Key   string      // Unique identifier (e.g., "perimeter")
	Value interface{} // The actual value (e.g., "1000", 2.12)
}

// Estimation the result of a Calculator calculation
type Estimation struct {
	// Outputs are made available as params to the calculators registered after this one.
	Outputs []Param
	Reason  string
}

// Output returns the float value of the output named key.
func (e Estimation) Output(key string) (float64, bool) {
	for _, p := range e.Outputs {
		if p.Key != key {
			continue
		}
		v, ok := p.Value.(float64)
		return v, ok
	}
	return 0, false
}
