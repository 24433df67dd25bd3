package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Flyrell/checkin/internal/schedule"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("cadence", isCadence); err != nil {
		return nil, nil, fmt.Errorf("failed to register cadence validation: %w", err)
	}
	if err := validate.RegisterTranslation("cadence", trans, func(ut ut.Translator) error {
		return ut.Add("cadence", "{0} must be a recurrence such as \"every day\", \"weekdays\" or an RRULE", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("cadence", fe.Field())
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register cadence translation: %w", err)
	}

	return validate, trans, nil
}

func isCadence(fl validator.FieldLevel) bool {
	_, err := schedule.ParseCadence(fl.Field().String())
	return err == nil
}

// Validate checks every key and reports all problems at once.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fe.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
