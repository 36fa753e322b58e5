// Command bbdump tokenizes bracket markup from files or stdin and prints the resulting nodes.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Drolfothesgnir/bbparse/bbcode"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minWidth     = 20
	// every dumped field starts with a label of this width, like "  value    : "
	labelWidth = 13
)

type options struct {
	jsonOut   bool
	width     int
	stats     bool
	unmatched bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}})

	var opts options

	flags := pflag.NewFlagSet("bbdump", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&opts.jsonOut, "json", "j", false, "Print nodes as JSON")
	flags.IntVarP(&opts.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.BoolVar(&opts.stats, "stats", false, "Print node statistics after the nodes")
	flags.BoolVar(&opts.unmatched, "unmatched", false, "Print unclosed and misplaced closing tags")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: bbdump [flags] [files...]\n")
		fmt.Fprintln(stderr, "\nIf no file is provided, markup is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if opts.width == 0 {
		opts.width = terminalWidth(stdout, defaultWidth)
	}

	inputs, err := readInputs(flags.Args(), stdin)
	if err != nil {
		logger.Error().Err(err).Msg("cannot read input")
		return 1
	}

	for _, in := range inputs {
		nodes := bbcode.Parse(in.data)

		if opts.jsonOut {
			err = writeJSON(stdout, in.name, nodes, opts)
		} else {
			err = writeText(stdout, in.name, len(inputs) > 1, nodes, opts)
		}

		if err != nil {
			logger.Error().Err(err).Str("input", in.name).Msg("cannot write output")
			return 1
		}
	}

	return 0
}

type input struct {
	name string
	data string
}

func readInputs(paths []string, stdin io.Reader) ([]input, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return []input{{name: "-", data: string(data)}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		var (
			data []byte
			err  error
		)
		if path == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: path, data: string(data)})
	}
	return inputs, nil
}

func writeText(w io.Writer, name string, withHeader bool, nodes []bbcode.Node, opts options) error {
	if withHeader {
		if _, err := fmt.Fprintf(w, "==> %s <==\n", name); err != nil {
			return err
		}
	}

	if err := writeDump(w, nodes, opts.width); err != nil {
		return err
	}

	if opts.stats {
		s := bbcode.Summarize(nodes)
		_, err := fmt.Fprintf(w, "nodes: %d, text: %d, open: %d, close: %d, attributes: %d, text bytes: %d\n",
			s.Nodes, s.TextNodes, s.OpenTags, s.CloseTags, s.Attributes, s.TextLen)
		if err != nil {
			return err
		}
	}

	if opts.unmatched {
		for _, warn := range bbcode.Check(nodes) {
			if _, err := fmt.Fprintf(w, "%d: %s\n", warn.Pos, warn.Description); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeDump prints every node as a block of labeled fields.
// Values longer than the width are word-wrapped and aligned under the label.
func writeDump(w io.Writer, nodes []bbcode.Node, width int) error {
	var b strings.Builder

	for _, sn := range bbcode.Serialize(nodes) {
		attr := "null"
		if sn.Attribute != nil {
			attr = *sn.Attribute
		}

		b.WriteString("{\n")
		writeField(&b, "type", sn.Kind, width)
		writeField(&b, "value", sn.Value, width)
		writeField(&b, "attribute", attr, width)
		b.WriteString("}\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeField(b *strings.Builder, label, value string, width int) {
	fmt.Fprintf(b, "  %-9s: ", label)

	limit := max(width-labelWidth, minWidth)
	lines := strings.Split(wordwrap.String(value, limit), "\n")

	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", labelWidth))
		b.WriteString(line)
	}
	b.WriteByte('\n')
}

type jsonDump struct {
	Input    string                       `json:"input"`
	Nodes    []bbcode.SerializableNode    `json:"nodes"`
	Stats    *bbcode.Stats                `json:"stats,omitempty"`
	Warnings []bbcode.SerializableWarning `json:"warnings,omitempty"`
}

func writeJSON(w io.Writer, name string, nodes []bbcode.Node, opts options) error {
	out := jsonDump{
		Input: name,
		Nodes: bbcode.Serialize(nodes),
	}

	if opts.stats {
		s := bbcode.Summarize(nodes)
		out.Stats = &s
	}

	if opts.unmatched {
		out.Warnings = bbcode.SerializeWarnings(bbcode.Check(nodes))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if width, _, err := term.GetSize(fd); err == nil && width > 0 {
				return width
			}
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if width, err := strconv.Atoi(value); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}
