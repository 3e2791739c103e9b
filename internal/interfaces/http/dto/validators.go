package dto

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopadmin/backend/internal/domain/document"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator. Safe to
// call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("storagekey", validateStorageKey)
	})
	return err
}

// validateStorageKey accepts keys that document.ValidateKey accepts
func validateStorageKey(fl validator.FieldLevel) bool {
	return document.ValidateKey(fl.Field().String()) == nil
}
