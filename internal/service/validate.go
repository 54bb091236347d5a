package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("duedate", func(fl validator.FieldLevel) bool {
		_, err := ParseDueDate(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks a task at the data boundary.
func (t Task) Validate() error {
	return check("task", t)
}

// Validate checks a list and all of its tasks at the data boundary.
func (l TodoList) Validate() error {
	return check("list", l)
}

func check(kind string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, kind, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalid, kind, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s %q must be one of %s", field, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "duedate":
		return fmt.Sprintf("%s %q is not a date (YYYY-MM-DD)", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
