package service

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/papakado/store/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(input any) error {
	return validate.Struct(input)
}

func validateSubmitOrder(input model.SubmitOrderDTO) *model.APIError {
	if err := validate.Struct(input); err != nil {
		return &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}
