package terminal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base"
)

// DefaultColorHelper is the capability query command, invoked as "<helper> colors"
const DefaultColorHelper = "tput"

// QueryColors returns the number of colors the terminal supports, or -1.
// The helper's first output line must be a decimal number. When the helper
// cannot be started, the terminfo entry for $TERM is consulted instead.
func QueryColors(ctx context.Context, helper string) (int, error) {
	if helper == "" {
		helper = DefaultColorHelper
	}

	out, err := exec.CommandContext(ctx, helper, "colors").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return -1, fmt.Errorf("%w: %s colors: %v", ErrCapabilityQuery, helper, err)
		}
		return terminfoColors(os.Getenv("TERM"))
	}
	return parseColors(out)
}

// parseColors reads the single-line numeric helper output
func parseColors(out []byte) (int, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	line := ""
	if sc.Scan() {
		line = strings.TrimSpace(sc.Text())
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, fmt.Errorf("%w: unexpected output %q", ErrCapabilityQuery, line)
	}
	return n, nil
}

// terminfoColors looks the color count up in the built-in terminfo database
func terminfoColors(name string) (int, error) {
	if name == "" {
		return -1, fmt.Errorf("%w: TERM not set", ErrCapabilityQuery)
	}
	ti, err := terminfo.LookupTerminfo(name)
	if err != nil {
		return -1, fmt.Errorf("%w: terminfo %q: %v", ErrCapabilityQuery, name, err)
	}
	if ti.Colors <= 0 {
		return -1, fmt.Errorf("%w: terminfo %q has no colors", ErrCapabilityQuery, name)
	}
	return ti.Colors, nil
}
