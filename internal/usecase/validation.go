package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateEmployeeInput(input CreateEmployeeInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Role) == "" {
		errors = append(errors, ValidationError{"role", "is required"})
	}

	if strings.TrimSpace(input.DepartmentID) == "" {
		errors = append(errors, ValidationError{"department_id", "is required"})
	}

	if input.TargetAmount != nil && *input.TargetAmount < 0 {
		errors = append(errors, ValidationError{"target_amount", "must not be negative"})
	}

	return errors
}

func ValidateUpdateEmployeeInput(input UpdateEmployeeInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.TargetAmount != nil && *input.TargetAmount < 0 {
		errors = append(errors, ValidationError{"target_amount", "must not be negative"})
	}

	return errors
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	if input.Status != nil && !input.Status.IsValid() {
		errors = append(errors, ValidationError{"status", "must be HOT, WARM, COLD, SOLD or CALL_BACK"})
	}

	if input.SoldAmount != nil && *input.SoldAmount < 0 {
		errors = append(errors, ValidationError{"sold_amount", "must not be negative"})
	}

	return errors
}
