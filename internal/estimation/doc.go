// Package estimation defines a pluggable job cost estimation calculator.
//
// Each stage of the calculation is encapsulated in one specific Calculator. The Engine runs
// them in order and feeds the outputs of one stage into the params of the next.
package estimation
