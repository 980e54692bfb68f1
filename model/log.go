package model

import (
	"github.com/lodastack/log"
)

// log file backend
var LogBackend *log.FileBackend
