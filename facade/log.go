package facade

import "github.com/op/go-logging"

var log = logging.MustGetLogger("facade")
