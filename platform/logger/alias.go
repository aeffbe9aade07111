package logger

import (
	"go.uber.org/zap"
)

var (
	String  = zap.String
	Int     = zap.Int
	Float64 = zap.Float64
	Time    = zap.Time
	ErrorF  = zap.Error
)

type (
	Field = zap.Field
)
