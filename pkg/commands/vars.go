package commands

import (
	"sort"

	"github.com/arthur-debert/foldergen/pkg/logging"
	"github.com/arthur-debert/foldergen/pkg/validator"
)

// VarsOptions defines the options for the Vars command
type VarsOptions struct {
	TemplatePath string
	VarsPath     string
}

// VarsResult lists variables by how the template and context relate
type VarsResult struct {
	Used    []string `json:"used" yaml:"used"`
	Missing []string `json:"missing" yaml:"missing"`
	Unused  []string `json:"unused" yaml:"unused"`
}

// Vars reports variable usage. Missing variables are listed, not fatal.
func Vars(opts VarsOptions) (*VarsResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Vars").Msg("Executing command")

	tpl, ctx, err := load(Inputs{TemplatePath: opts.TemplatePath, VarsPath: opts.VarsPath})
	if err != nil {
		return nil, err
	}

	used := []string{}
	for k := range validator.CollectUsedVars(tpl) {
		used = append(used, k)
	}
	sort.Strings(used)

	return &VarsResult{
		Used:    used,
		Missing: nonNil(validator.FindMissing(tpl, ctx)),
		Unused:  nonNil(validator.FindUnused(tpl, ctx)),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
