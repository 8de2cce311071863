package fiberlog

import "github.com/sirupsen/logrus"

// Config controls which request fields the logging middleware records.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
