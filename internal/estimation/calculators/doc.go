// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator covers one stage of a cutting job estimate (cutting time, gas consumption,
// cost aggregation). Calculators are bound to the selected reference row at construction time,
// are composed via the estimation.Engine and accept user input through estimation.Param slices.
// The Compute* functions expose the same formulas over already parsed values.
package calculators
