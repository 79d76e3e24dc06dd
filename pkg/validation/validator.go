package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the rules the account and project handlers bind against.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=8") // password minimum length

	// username: 3-20 chars of [A-Za-z0-9_]
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})

	// identity: either a syntactically valid email or a valid username.
	// Which lookup strategy the login uses is decided later from the
	// same syntax, so the two rules must stay in agreement.
	_ = v.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if usernameRe.MatchString(s) {
			return true
		}
		return v.Var(s, "email") == nil
	})
}

// IsUsername reports whether s matches the username pattern.
func IsUsername(s string) bool {
	return usernameRe.MatchString(s)
}

// ToErrors converts validation/binding errors into a field -> messages
// map matching the 422 wire format.
func ToErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string][]string{"payload": {"must be valid json"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			out[field] = append(out[field], formatFieldError(fe))
		}
		return out
	}

	return map[string][]string{"payload": {"invalid payload"}}
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "username":
		return "must be 3-20 characters of letters, numbers and underscores"
	case "identity":
		return "must be a valid email or username"
	case "min", "pwd":
		if param == "" {
			param = "8"
		}
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "eqfield":
		if fe.Param() == "Password" {
			return "must match the password"
		}
		return "must match " + param
	default:
		return "is invalid"
	}
}
