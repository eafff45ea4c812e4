package estimation

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine orchestrates Calculator objects and aggregates their results
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimation.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already registered,
// as duplicate names would silently overwrite results in Run.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Run executes all registered calculators against the provided params.
// The outputs of every calculator are merged into the params seen by the following ones.
// The first calculator error stops the run and is returned as is.
func (e *Engine) Run(inputs []Param) (map[string]Estimation, error) {
	// Convert slice to map for lookups by Calculators
	paramMap := make(map[string]Param, len(inputs))
	for _, p := range inputs {
		paramMap[p.Key] = p
	}

	results := make(map[string]Estimation, len(e.calculators))
	for _, calc := range e.calculators {
		est, err := calc.Calculate(paramMap)
		if err != nil {
			zap.S().Named("estimation").Debugw("calculator failed", "calculator", calc.Name(), "error", err)
			return nil, err
		}
		for _, out := range est.Outputs {
			paramMap[out.Key] = out
		}
		results[calc.Name()] = est
	}
	return results, nil
}
