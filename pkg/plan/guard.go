package plan

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/arthur-debert/foldergen/pkg/generator"
	"github.com/arthur-debert/foldergen/pkg/types"
)

// guard refuses a node whose estimated name x files variants exceed the
// limit. Products saturate instead of wrapping and the file product
// short-circuits once the limit is passed. This bounds one node at a time,
// not the plan as a whole.
func (b *Builder) guard(node *types.TemplateNode) error {
	limit := b.opts.MaxExpand

	names := 1
	if node.Name != "" {
		n, err := generator.EstimateCount(node.Name)
		if err != nil {
			return err
		}
		names = n
	}

	files := 1
	for _, f := range node.Files {
		if names > limit {
			break
		}
		n, err := generator.EstimateCount(f)
		if err != nil {
			return err
		}
		if n < 1 {
			n = 1
		}
		files = generator.MulCount(files, n)
		if generator.MulCount(names, files) > limit {
			break
		}
	}

	total := generator.MulCount(names, files)
	if total <= limit {
		return nil
	}

	quoted := make([]string, len(node.Files))
	for i, f := range node.Files {
		quoted[i] = fmt.Sprintf("'%s'", f)
	}
	fragment := fmt.Sprintf("name='%s', files=[%s]", node.Name, strings.Join(quoted, ", "))
	return errors.Newf(errors.ErrExpansionTooLarge, "expansion too large: estimated %d > limit %d [at: %s]", total, limit, fragment).
		WithDetails(map[string]interface{}{
			"node":     node.Name,
			"estimate": total,
			"limit":    limit,
		})
}
