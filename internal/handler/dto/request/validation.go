package request

import (
	"reflect"
	"strings"
	"sync"

	"marketplace-api/internal/domain/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the clock, isodate and workinghours rules to gin's
// validator and makes field errors report JSON names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("clock", isClock)
		_ = v.RegisterValidation("isodate", isISODate)
		_ = v.RegisterValidation("workinghours", isWorkingHours)
	})
}

func isClock(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func isWorkingHours(fl validator.FieldLevel) bool {
	w, ok := fl.Field().Interface().(WorkingHours)
	if !ok {
		return false
	}
	return w.ToDomain().Validate() == nil
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseDate(fl.Field().String())
	return err == nil
}
