package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("validator 엔진을 가져올 수 없습니다")
	}
	return v, nil
}

var customValidations = map[string]validator.Func{
	"usphone":    ValidateUSPhone,
	"personname": ValidatePersonName,
	"message":    ValidateMessage,
}

// RegisterAll registers all common validators defined in this package
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("validator 엔진 가져오기 실패: %w", err)
	}

	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("%s validator 등록 실패: %w", tag, err)
		}
	}

	slog.Info("공통 Validator 등록 완료", "validators", len(customValidations))
	return nil
}
