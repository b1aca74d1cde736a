package validator

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything longer
	passwordSymbols   = "!@#$%^&*()_+-=[]{};:'\"\\|,.<>/?`~"
)

// AppValidator implements usecasecontract.IValidator.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

func NewValidator() *AppValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength requires 8 to 72 characters with at least one
// upper case letter, one lower case letter, one digit and one symbol.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return errors.New("password must be at least 8 characters long")
	case len(password) > maxPasswordLength:
		return errors.New("password must be at most 72 bytes long")
	case !strings.ContainsFunc(password, unicode.IsUpper):
		return errors.New("password must contain at least one uppercase letter")
	case !strings.ContainsFunc(password, unicode.IsLower):
		return errors.New("password must contain at least one lowercase letter")
	case !strings.ContainsFunc(password, unicode.IsDigit):
		return errors.New("password must contain at least one number")
	case !strings.ContainsAny(password, passwordSymbols):
		return errors.New("password must contain at least one special character")
	}
	return nil
}

// RegisterCustomValidators registers the custom binding tags on gin's validator.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	tags := map[string]validator.Func{
		"containsuppercase": runeCheck(unicode.IsUpper),
		"containslowercase": runeCheck(unicode.IsLower),
		"containsdigit":     runeCheck(unicode.IsDigit),
		"containssymbol": func(fl validator.FieldLevel) bool {
			return strings.ContainsAny(fl.Field().String(), passwordSymbols)
		},
		"userrole": func(fl validator.FieldLevel) bool {
			_, err := entity.ParseRole(fl.Field().String())
			return err == nil
		},
		"joindecision": func(fl validator.FieldLevel) bool {
			_, err := entity.JoinDecision(fl.Field().String()).TargetStatus()
			return err == nil
		},
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func runeCheck(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), pred)
	}
}
