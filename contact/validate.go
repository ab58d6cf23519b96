package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// phonePattern is E.164-like: optional leading +, 2-15 digits,
// first digit nonzero.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("contact: register phone validation: %v", err))
	}
	return v
}

// Validate checks the contact against the field rules declared on the
// struct. It returns a single error describing every failing field, or
// nil when the contact is valid. Validation never touches storage.
func (c *Contact) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("contact: validate: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("contact: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name is required and must be at most 100 characters"
	case "Email":
		return "a valid email address is required"
	case "PhoneNumber":
		return "phone number must be 2-15 digits with an optional leading +"
	case "Address":
		return "address cannot exceed 500 characters"
	case "OwnerID":
		return "owner is required"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
