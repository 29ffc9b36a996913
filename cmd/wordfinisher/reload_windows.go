package main

import (
	"context"

	"github.com/bastiangx/wordfinisher/pkg/dictionary"
)

// no SIGHUP on windows; use [dict].watch instead
func reloadOnHangup(context.Context, *dictionary.Reloader) {}
