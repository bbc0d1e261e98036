// Package validation configures the struct validator used for request bodies.
//
// Request DTOs carry `binding` tags. Gin evaluates them while binding and the
// patch path evaluates the same tags after applying operations, so both report
// identical field errors under their JSON names.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const tagName = "binding"

var (
	once     sync.Once
	instance *validator.Validate
	ginOnce  sync.Once
)

// New returns a validator reading `binding` tags and naming fields after
// their JSON keys.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName(tagName)
	v.RegisterTagNameFunc(jsonName)
	return v
}

// Default returns a process-wide validator built by New.
func Default() *validator.Validate {
	once.Do(func() { instance = New() })
	return instance
}

// RegisterWithGin makes gin's binding validator report JSON field names.
func RegisterWithGin() {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonName)
		}
	})
}

// Struct validates s against its binding tags.
func Struct(s any) error {
	return Default().Struct(s)
}

func jsonName(f reflect.StructField) string {
	name := strings.Split(f.Tag.Get("json"), ",")[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
