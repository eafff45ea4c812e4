package service

import (
	"fmt"
)

type ErrNoDataset struct {
	error
}

func NewErrNoDataset() *ErrNoDataset {
	return &ErrNoDataset{fmt.Errorf("no reference dataset loaded")}
}

type ErrMissingOutput struct {
	error
}

func NewErrMissingOutput(calculator, key string) *ErrMissingOutput {
	return &ErrMissingOutput{fmt.Errorf("calculator %q produced no %s", calculator, key)}
}
