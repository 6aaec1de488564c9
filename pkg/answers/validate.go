package answers

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"

	"github.com/nikogura/archetype-match/pkg/questions"
)

//nolint:gochecknoglobals // Singleton validator caches struct metadata
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() (v *validator.Validate) {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	v = validate
	return v
}

// Validate checks the sheet's shape: a user id, known answer kinds, the picks each kind
// needs, and distinct picks on dual answers. It does not consult the question bank.
func (s *Sheet) Validate() (err error) {
	err = getValidator().Struct(s)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			messages := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				messages = append(messages, translate(fe))
			}
			err = errors.New(strings.Join(messages, "; "))
			return err
		}
		err = errors.Wrap(err, "answer sheet validation failed")
		return err
	}

	for id, answer := range s.Answers {
		if answer.Kind == questions.KindDual && samePick(answer.MostLikeOption, answer.SecondLikeOption) {
			err = errors.Errorf("answers[%s]: most_like_option and second_like_option must differ", id)
			return err
		}
	}

	return err
}

// samePick compares option keys the way the question bank resolves them, case-folded.
func samePick(a, b string) (same bool) {
	fold := cases.Fold()
	same = fold.String(a) == fold.String(b)
	return same
}

func translate(fe validator.FieldError) (message string) {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	switch fe.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", field)
	case "required_if":
		message = fmt.Sprintf("%s is required when %s", field, strings.Replace(fe.Param(), " ", " is ", 1))
	case "oneof":
		message = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		message = fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
	return message
}
