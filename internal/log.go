package internal

import (
	"io"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// NewLogger returns a logfmt logger writing to w that drops everything below
// level ("debug", "info", "error" or "none").
func NewLogger(w io.Writer, level string) (log.Logger, error) {
	allow, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(w)), allow), nil
}
