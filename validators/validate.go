package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/common"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Body parses the request body into T, runs tag validation and stashes the
// struct in c.Locals under key for the controller to pick up.
func Body[T any](c *fiber.Ctx, key string) error {
	reqData := new(T)
	if err := c.BodyParser(reqData); err != nil {
		return common.NewValidationError(map[string]string{"body": "Invalid request body!"})
	}
	if fields := CheckStruct(reqData); fields != nil {
		return common.NewValidationError(fields)
	}
	c.Locals(key, reqData)
	return c.Next()
}

// CheckStruct runs tag validation and flattens failures into a field→message map
func CheckStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["body"] = "Invalid request body!"
		return fields
	}

	for _, fe := range validationErrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email!"
	case "e164":
		return "Invalid phone number!"
	case "min":
		return "Value is too short or too small (min " + fe.Param() + ")!"
	case "max":
		return "Value is too long or too large (max " + fe.Param() + ")!"
	case "oneof":
		return "Must be one of: " + fe.Param() + "!"
	case "gt":
		return "Must be greater than " + fe.Param() + "!"
	case "gte":
		return "Must be at least " + fe.Param() + "!"
	case "url":
		return "Invalid URL!"
	default:
		return "Invalid value!"
	}
}
