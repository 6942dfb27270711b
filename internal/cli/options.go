package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reviewprompt/reviewprompt/internal/prompt"
)

// DefaultUnifiedContext is the unified-context line count used when no
// -U/--unified flag is given, matching git's own default.
const DefaultUnifiedContext = 3

// Options holds one invocation's settings. It is built once by Parse and
// passed by value to the later stages.
type Options struct {
	AdditionalContext string
	SystemPrompt      string
	ShowSystemPrompt  bool
	OutputFormat      prompt.Format
	UnifiedContext    int
	WriteFile         bool
	FileName          string
	Verbose           bool
	Debug             bool
	ForceReduced      bool
	ShowHelp          bool
	ShowVersion       bool

	// PassThrough keeps every argument this tool did not recognize, in
	// original order, for forwarding to git diff verbatim.
	PassThrough []string
}

// Parse interprets the raw argument list. Recognized flags are consumed;
// everything else lands in PassThrough. A literal "--" ends interpretation:
// it and all following arguments pass through untouched (git uses it to
// delimit path filters).
func Parse(args []string) (Options, error) {
	opts := Options{UnifiedContext: DefaultUnifiedContext}

	passOnly := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if passOnly {
			opts.PassThrough = append(opts.PassThrough, arg)
			continue
		}

		switch {
		case arg == "--":
			passOnly = true
			opts.PassThrough = append(opts.PassThrough, arg)

		case arg == "-c" || arg == "--context":
			v, err := takeValue(args, &i, arg)
			if err != nil {
				return Options{}, err
			}
			opts.AdditionalContext = v
		case strings.HasPrefix(arg, "--context="):
			opts.AdditionalContext = strings.TrimPrefix(arg, "--context=")

		case arg == "-s" || arg == "--system-prompt":
			v, err := takeValue(args, &i, arg)
			if err != nil {
				return Options{}, err
			}
			opts.SystemPrompt = v
		case strings.HasPrefix(arg, "--system-prompt="):
			opts.SystemPrompt = strings.TrimPrefix(arg, "--system-prompt=")

		case arg == "-S" || arg == "--show-system-prompt":
			opts.ShowSystemPrompt = true

		case arg == "-F" || arg == "--output-format":
			v, err := takeValue(args, &i, arg)
			if err != nil {
				return Options{}, err
			}
			format, err := prompt.ParseFormat(v)
			if err != nil {
				return Options{}, err
			}
			opts.OutputFormat = format
		case strings.HasPrefix(arg, "--output-format="):
			format, err := prompt.ParseFormat(strings.TrimPrefix(arg, "--output-format="))
			if err != nil {
				return Options{}, err
			}
			opts.OutputFormat = format

		case arg == "-U" || arg == "--unified":
			v, err := takeValue(args, &i, arg)
			if err != nil {
				return Options{}, err
			}
			n, err := parseUnified(v)
			if err != nil {
				return Options{}, err
			}
			opts.UnifiedContext = n
		case strings.HasPrefix(arg, "--unified="):
			n, err := parseUnified(strings.TrimPrefix(arg, "--unified="))
			if err != nil {
				return Options{}, err
			}
			opts.UnifiedContext = n
		case strings.HasPrefix(arg, "-U") && len(arg) > 2:
			n, err := parseUnified(arg[2:])
			if err != nil {
				return Options{}, err
			}
			opts.UnifiedContext = n

		case arg == "-f" || arg == "--file":
			opts.WriteFile = true
		case strings.HasPrefix(arg, "--file="):
			name := strings.TrimPrefix(arg, "--file=")
			if name == "" {
				return Options{}, fmt.Errorf("flag --file= requires a file name")
			}
			opts.WriteFile = true
			opts.FileName = name

		case arg == "-h" || arg == "--help":
			opts.ShowHelp = true
		case arg == "--version":
			opts.ShowVersion = true
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
		case arg == "-D" || arg == "--debug":
			opts.Debug = true
		case arg == "--force-reduced":
			opts.ForceReduced = true

		default:
			opts.PassThrough = append(opts.PassThrough, arg)
		}
	}

	if opts.Debug {
		opts.Verbose = true
	}
	return opts, nil
}

// GitArgs is the argument vector handed to git diff: the unified-context
// flag up front, then the pass-through arguments verbatim.
func (o Options) GitArgs() []string {
	args := make([]string, 0, len(o.PassThrough)+1)
	args = append(args, fmt.Sprintf("-U%d", o.UnifiedContext))
	return append(args, o.PassThrough...)
}

// RevisionSelector returns the first pass-through argument that looks like a
// revision or range, used to label derived output file names. Returns ""
// when the diff targets the working tree.
func (o Options) RevisionSelector() string {
	for _, arg := range o.PassThrough {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return arg
	}
	return ""
}

func takeValue(args []string, i *int, flag string) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("flag %s requires a value", flag)
	}
	*i++
	return args[*i], nil
}

func parseUnified(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid unified context %q: want a non-negative integer", s)
	}
	return n, nil
}
