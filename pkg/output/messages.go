package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/pterm/pterm"
)

// FormatError renders err behind pterm's error prefix. Foldergen errors
// already lead with their code.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// FormatWarning renders a warning line
func FormatWarning(msg string) string {
	return fmt.Sprintf("%s %s", pterm.Warning.Prefix.Text, pterm.Warning.MessageStyle.Sprint(msg))
}

// Summary is the one line totals of a plan
func Summary(dirs, files int) string {
	return fmt.Sprintf("Summary: dirs=%d, files=%d", dirs, files)
}

// Confirm asks a yes/no question on out and reads the answer from in.
// Anything but y or yes, including end of input, declines.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", question); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
