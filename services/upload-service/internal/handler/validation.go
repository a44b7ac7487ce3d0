package handler

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/LaithTanirah/football/services/upload-service/internal/model"
	"github.com/LaithTanirah/football/services/upload-service/internal/service"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const imageDataURITag = "imagedatauri"

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom binding rules on gin's validator. Safe to call repeatedly.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		registerErr = v.RegisterValidation(imageDataURITag, func(fl validator.FieldLevel) bool {
			return service.IsImageDataURI(fl.Field().String())
		})
	})
	return registerErr
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// validationDetails turns a binding error into per-field details.
func validationDetails(err error) []model.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]model.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, model.FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: ruleMessage(fe),
			})
		}
		return details
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []model.FieldError{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: "Expected " + typeErr.Type.String() + ", got " + typeErr.Value,
		}}
	}
	return []model.FieldError{{Field: "body", Rule: "json", Message: "Request body must be a JSON object"}}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case imageDataURITag:
		return service.InvalidImageMessage
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
