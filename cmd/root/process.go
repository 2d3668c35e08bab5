package root

import (
	"bank-analyzer/internal/container"
	"bank-analyzer/internal/fileutils"
	"bank-analyzer/internal/logging"
)

// ResolveInputs expands directory arguments and checks every file's format.
// A file that does not look like an export only logs a warning; parsing still
// decides whether the run fails.
func ResolveInputs(c *container.Container, args []string) ([]string, error) {
	logger := c.GetLogger()

	files, err := fileutils.ExpandInputs(args, logger)
	if err != nil {
		return nil, err
	}

	p := c.GetParser()
	for _, file := range files {
		valid, err := p.ValidateFormat(file)
		if err != nil {
			logger.WithError(err).Debug("Format check skipped", logging.F(logging.FieldFile, file))
			continue
		}
		if !valid {
			logger.Warn("File has no transaction rows, check the export format",
				logging.F(logging.FieldFile, file))
		}
	}
	return files, nil
}
