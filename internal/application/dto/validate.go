package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"

	"github.com/jhoicas/datanova-api/internal/domain"
)

// Validator valida los request DTO con las etiquetas `validate` y traduce el
// primer error al español usando el nombre JSON del campo.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator construye el validador con traducciones en español.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := es.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(v, trans); err != nil {
		// mensajes en inglés
		trans = nil
	}
	return &Validator{validate: v, translator: trans}
}

// Struct devuelve nil o un error que envuelve domain.ErrInvalidInput.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	first := verrs[0]
	msg := first.Error()
	if v.translator != nil {
		msg = first.Translate(v.translator)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
