package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sheetworks/cut-estimator/internal/dataset"
	"go.uber.org/zap/zapcore"
)

func datasetPathValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := dataset.FormatFromPath(val)
	return err == nil
}

// excel limits sheet names to 31 characters and forbids : \ / ? * [ ]
func sheetNameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	if val == "" || len([]rune(val)) > 31 {
		return false
	}
	return !strings.ContainsAny(val, `:\/?*[]`)
}

func logLevelValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := zapcore.ParseLevel(val)
	return err == nil
}
