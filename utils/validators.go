package utils

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"journeymap/model"
)

var Validate *validator.Validate

// InitValidator registers the custom category rule on both the standalone
// validator and gin's binding engine.
func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("category", ValidateCategoryRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("category", ValidateCategoryRule)
	}
}

// ValidateCategoryRule accepts only the three known destination categories.
func ValidateCategoryRule(fl validator.FieldLevel) bool {
	return model.Category(fl.Field().String()).Valid()
}
