package planner

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/housing-budget/internal/budget"
	"github.com/iwvelando/housing-budget/internal/recommend"
	"github.com/iwvelando/housing-budget/internal/reference"
)

// ErrInvalidInput marks a profile with out-of-range or missing fields.
var ErrInvalidInput = budget.ErrInvalidInput

// HouseholdProfile is one household's submission.
type HouseholdProfile struct {
	Name                  string                 `json:"name,omitempty" yaml:"name"`
	MonthlyIncome         float64                `json:"monthlyIncome" yaml:"monthlyIncome" validate:"gt=0"`
	MonthlyObligations    float64                `json:"monthlyObligations" yaml:"monthlyObligations" validate:"gte=0"`
	Age                   int                    `json:"age" yaml:"age" validate:"min=18,max=90"`
	FamilySize            int                    `json:"familySize" yaml:"familySize" validate:"min=1,max=20"`
	RequiredRooms         int                    `json:"requiredRooms" yaml:"requiredRooms" validate:"min=1,max=10"`
	SalaryIncreasePct     float64                `json:"expectedSalaryIncrease" yaml:"expectedSalaryIncrease" validate:"gte=0,lte=20"`
	City                  string                 `json:"city" yaml:"city" validate:"required"`
	WorkRegion            string                 `json:"workRegion,omitempty" yaml:"workRegion"`
	FinancingOption       budget.FinancingOption `json:"financingOption" yaml:"financingOption" validate:"required,oneof=cash mortgage direct_installment"`
	MortgageRatePct       float64                `json:"mortgageInterestRate" yaml:"mortgageInterestRate" validate:"gte=0,lte=15"`
	PreferredPropertyType reference.PropertyType `json:"preferredPropertyType,omitempty" yaml:"preferredPropertyType" validate:"omitempty,oneof=apartment duplex villa studio"`
	OwnershipPreference   recommend.Ownership    `json:"ownershipPreference,omitempty" yaml:"ownershipPreference" validate:"omitempty,oneof=buy rent"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks every field of the profile against its allowed range.
func (p HouseholdProfile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", fe.Field(), fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
