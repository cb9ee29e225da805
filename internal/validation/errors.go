package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`the '.*' tag`)

// invalidVarError wraps an error raised by validator on a flag value,
// and rewrites its message into one more adapted to a command line.
type invalidVarError struct {
	fieldName    string
	fieldValue   string
	validatorErr error
}

func (err *invalidVarError) Error() string {
	matched := tagPattern.FindString(err.validatorErr.Error())
	if matched != "" {
		var tagname string
		if parts := strings.Split(matched, " "); len(parts) > 1 {
			tagname = strings.Trim(parts[1], "'")
		}

		return fmt.Sprintf("`%s` is not a valid %s", err.fieldValue, tagname)
	}

	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.fieldName))
}

func (err *invalidVarError) Unwrap() error {
	return err.validatorErr
}
