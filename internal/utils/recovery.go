package utils

import (
	"runtime/debug"
	"sync"

	log "github.com/sirupsen/logrus"
)

// RecoveryWithCallback marks the goroutine as done when it panicked and
// hands the panic value to callback.
func RecoveryWithCallback(wg *sync.WaitGroup, callback func(any)) {
	if r := recover(); r != nil {
		log.WithField("panic", r).WithField("stack", string(debug.Stack())).Error("Recovered from panic")
		if callback != nil {
			callback(r)
		}
		wg.Done()
	}
}
