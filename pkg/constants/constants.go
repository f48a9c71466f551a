package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	RequestStart ContextKey = "requestStart"
)

// Validate is the shared validator instance used by all DTO Ok() methods.
var Validate = validator.New(validator.WithRequiredStructEnabled())
