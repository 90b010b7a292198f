package engine

import (
	"path/filepath"
	"strings"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// getResultFolder returns <resultsFolder>/<code>, with path separators in the code replaced.
func getResultFolder(resultsFolder string, security types.Security) string {
	code := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(security.Code)

	return filepath.Join(resultsFolder, code)
}
