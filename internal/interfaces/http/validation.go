package http

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// msisdnPattern accepts E.164 numbers: +, country code, 7 to 14 more digits.
var msisdnPattern = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

var registerValidatorsOnce sync.Once

// registerValidators installs custom binding rules on gin's validator.
// Customer phones double as subscription identity, so they are held to
// E.164 at the edge.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
			return msisdnPattern.MatchString(fl.Field().String())
		})
	})
}
