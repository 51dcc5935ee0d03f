package predict

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// guard runs one pipeline stage. A panicking stage is logged and replaced by
// its documented default so the stages after it still run.
func guard[T any](stage string, fallback T, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("stage", stage).Error("[Predict] Stage failed: ", fmt.Sprint(r))
			result = fallback
		}
	}()
	return fn()
}
