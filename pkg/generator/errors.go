package generator

import (
	"fmt"

	"github.com/arthur-debert/foldergen/pkg/errors"
)

// syntaxError builds a GENERATOR_SYNTAX error that embeds the offending fragment
func syntaxError(fragment, format string, args ...interface{}) *errors.FoldergenError {
	msg := fmt.Sprintf(format, args...)
	if fragment != "" {
		msg = fmt.Sprintf("%s [at: {{ %s }}]", msg, fragment)
	}
	return errors.New(errors.ErrGeneratorSyntax, msg).WithDetail("fragment", fragment)
}

func unknownTypeError(typ, fragment string) *errors.FoldergenError {
	return errors.Newf(errors.ErrGeneratorUnknown, "unknown generator type: %s [at: {{ %s }}]", typ, fragment).
		WithDetail("type", typ).
		WithDetail("fragment", fragment)
}
