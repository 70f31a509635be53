package handlers

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/purchase_exchange_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators installs the custom rules used by request DTOs on gin's validator.
// It is safe to call more than once.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)
		// lets numeric tags apply to decimal amounts
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			registerValidatorsErr = err
			return
		}
		if err := v.RegisterValidation("positivecents", positiveCents); err != nil {
			registerValidatorsErr = err
			return
		}
		registerValidatorsErr = v.RegisterValidation("notfuture", notFutureDate)
	})
	return registerValidatorsErr
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// positiveCents accepts amounts that stay above zero once rounded to cents.
// The field arrives as float64 when the decimal type func has already run.
func positiveCents(fl validator.FieldLevel) bool {
	var amount decimal.Decimal
	switch v := fl.Field().Interface().(type) {
	case decimal.Decimal:
		amount = v
	case float64:
		amount = decimal.NewFromFloat(v)
	default:
		return false
	}
	return amount.Round(domain.AmountScale).IsPositive()
}

// notFutureDate accepts YYYY-MM-DD strings no later than today (UTC). Unparsable
// values pass here and are reported by the datetime rule instead.
func notFutureDate(fl validator.FieldLevel) bool {
	d, err := domain.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	return !d.After(domain.NormalizeDate(time.Now().UTC()))
}

var validationMessages = map[string]map[string]string{
	"description": {
		"required": "Description is required",
		"notblank": "Description is required",
		"max":      "Description is too long",
	},
	"amount": {
		"required":      "Amount is required",
		"positivecents": "Amount must be positive",
	},
	"transactionDate": {
		"required":  "Transaction date is required",
		"datetime":  "Transaction date must be in YYYY-MM-DD format",
		"notfuture": "Transaction date cannot be in the future",
	},
}

// validationErrorFields turns validator errors into one message per field.
func validationErrorFields(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		if msg, ok := validationMessages[field][fe.Tag()]; ok {
			fields[field] = msg
			continue
		}
		fields[field] = field + " is invalid"
	}
	return fields
}
