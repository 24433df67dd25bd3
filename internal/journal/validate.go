package journal

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// ValidationError reports every rule an entry violates. A save that fails
// with it leaves the store unchanged.
type ValidationError struct {
	Fields   []string
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid entry: " + strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	validatorOnce  sync.Once
	entryValidator *validator.Validate
	entryTrans     ut.Translator
	validatorErr   error
)

func loadValidator() (*validator.Validate, ut.Translator, error) {
	validatorOnce.Do(func() {
		entryValidator, entryTrans, validatorErr = newValidator()
	})
	return entryValidator, entryTrans, validatorErr
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("date", isCalendarDate); err != nil {
		return nil, nil, fmt.Errorf("failed to register date validation: %w", err)
	}
	if err := validate.RegisterTranslation("date", trans, func(ut ut.Translator) error {
		return ut.Add("date", "{0} must be a calendar date in YYYY-MM-DD format", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("date", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register date translation: %w", err)
	}

	if err := validate.RegisterValidation("finite", isFinite); err != nil {
		return nil, nil, fmt.Errorf("failed to register finite validation: %w", err)
	}
	if err := validate.RegisterTranslation("finite", trans, func(ut ut.Translator) error {
		return ut.Add("finite", "{0} must be a finite number", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("finite", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register finite translation: %w", err)
	}

	return validate, trans, nil
}

func isFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

func isCalendarDate(fl validator.FieldLevel) bool {
	return Date(fl.Field().String()).Valid()
}

// Validate checks the documented ranges: mood in [1,10], stress in [1,4]
// and present, sleep finite and non-negative, date well-formed.
func (e Entry) Validate() error {
	validate, trans, err := loadValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, fe.Field())
		ve.Problems = append(ve.Problems, fe.Translate(trans))
	}
	return ve
}
