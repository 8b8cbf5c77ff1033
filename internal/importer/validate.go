package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateIntake runs the wizard's checks against an intake.
// Returns a slice of all validation errors found.
func ValidateIntake(in *domain.Intake) []error {
	var errs []error

	errs = append(errs, validateContact(in)...)
	errs = append(errs, validateProject(in)...)
	errs = append(errs, validateScope(in)...)
	errs = append(errs, validateExpectations(in)...)
	errs = append(errs, validateConfirmation(in)...)

	return errs
}

// Check wraps ValidateIntake into a single error suitable for returning from
// a command. Returns nil when the intake is valid.
func Check(in *domain.Intake) error {
	errs := ValidateIntake(in)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidIntake, errors.Join(errs...))
}

func validateContact(in *domain.Intake) []error {
	var errs []error

	if err := RequiredText("companyName")(in.CompanyName); err != nil {
		errs = append(errs, err)
	}
	if err := RequiredText("contactName")(in.ContactName); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateEmail(in.Email); err != nil {
		errs = append(errs, fmt.Errorf("email: %w", err))
	}

	return errs
}

func validateProject(in *domain.Intake) []error {
	var errs []error

	if err := RequiredText("oneSentence")(in.OneSentence); err != nil {
		errs = append(errs, err)
	}
	if err := RequiredText("problem")(in.Problem); err != nil {
		errs = append(errs, err)
	}
	if err := RequiredText("success")(in.Success); err != nil {
		errs = append(errs, err)
	}

	return errs
}

func validateScope(in *domain.Intake) []error {
	var errs []error

	if len(in.Scope) == 0 {
		errs = append(errs, fmt.Errorf("scope: select at least one option"))
	}
	for i, s := range in.Scope {
		if !domain.ValidScopeOptions[s] {
			errs = append(errs, fmt.Errorf("scope[%d]: invalid value %q", i, s))
		}
	}

	return errs
}

func validateExpectations(in *domain.Intake) []error {
	var errs []error

	if len(in.Priority) == 0 {
		errs = append(errs, fmt.Errorf("priority: select at least one option"))
	}
	for i, p := range in.Priority {
		if !domain.ValidPriorityOptions[p] {
			errs = append(errs, fmt.Errorf("priority[%d]: invalid value %q", i, p))
		}
	}
	if in.Involvement == "" {
		errs = append(errs, fmt.Errorf("involvement is required"))
	} else if !domain.ValidInvolvements[in.Involvement] {
		errs = append(errs, fmt.Errorf("involvement: invalid value %q", in.Involvement))
	}

	return errs
}

func validateConfirmation(in *domain.Intake) []error {
	var errs []error

	if err := RequiredText("signature")(in.Signature); err != nil {
		errs = append(errs, err)
	}
	if in.SignDate != "" {
		if err := ValidateDate(in.SignDate); err != nil {
			errs = append(errs, fmt.Errorf("signDate: %w", err))
		}
	}

	return errs
}

// RequiredText returns a validator that rejects blank input for field.
func RequiredText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateEmail accepts a non-blank address of the form a@b.c.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("is required")
	}
	if !emailPattern.MatchString(s) {
		return fmt.Errorf("invalid address %q", s)
	}
	return nil
}

// ValidateDate accepts a YYYY-MM-DD date string.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
