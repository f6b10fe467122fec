// logger.go
package headersimilarity

import (
	"os"

	"github.com/baditaflorin/go_header_similarity/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

// NewDefaultLogger creates a text logger writing to stdout.
func NewDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(logger.DefaultConfig(os.Stdout))
}
