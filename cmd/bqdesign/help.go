package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
)

// styledHelpPrinter renders help for the selected command, or the
// application when no command has been selected, with lipgloss styling.
func styledHelpPrinter() kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Model.Node
		if sel := ctx.Selected(); sel != nil {
			node = sel
		}

		var sb strings.Builder
		sb.WriteString(titleStyle.Render("bqdesign"))
		sb.WriteString("\n")
		if node.Help != "" {
			sb.WriteString(node.Help)
			sb.WriteString("\n")
		}

		sb.WriteString(sectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usageLine(node))
		sb.WriteString("\n")

		if cmds := commandNodes(node); len(cmds) > 0 {
			sb.WriteString(sectionStyle.Render("Commands:"))
			sb.WriteString("\n")
			for _, c := range cmds {
				sb.WriteString("  ")
				sb.WriteString(helpArgStyle.Render(c.Name))
				sb.WriteString("  ")
				sb.WriteString(c.Help)
				sb.WriteString("\n")
			}
		}

		if len(node.Positional) > 0 {
			sb.WriteString(sectionStyle.Render("Arguments:"))
			sb.WriteString("\n")
			for _, arg := range node.Positional {
				sb.WriteString("  ")
				sb.WriteString(helpArgStyle.Render(arg.Summary()))
				if arg.Help != "" {
					sb.WriteString("  ")
					sb.WriteString(arg.Help)
				}
				sb.WriteString("\n")
			}
		}

		sb.WriteString(sectionStyle.Render("Flags:"))
		sb.WriteString("\n")
		for _, f := range helpFlags(ctx, node) {
			sb.WriteString("  ")
			sb.WriteString(helpFlagStyle.Render(f.flags))
			if f.help != "" {
				sb.WriteString("  ")
				sb.WriteString(f.help)
			}
			if f.defaultVal != "" {
				sb.WriteString(" ")
				sb.WriteString(helpDefaultStyle.Render("(default: " + f.defaultVal + ")"))
			}
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		_, err := fmt.Fprint(ctx.Stdout, sb.String())
		return err
	}
}

type helpFlag struct {
	flags      string
	help       string
	defaultVal string
}

func usageLine(node *kong.Node) string {
	parts := []string{node.FullPath(), "[flags]"}
	if len(commandNodes(node)) > 0 {
		parts = append(parts, "<command>")
	}
	for _, arg := range node.Positional {
		parts = append(parts, arg.Summary())
	}
	return strings.Join(parts, " ")
}

func commandNodes(node *kong.Node) []*kong.Node {
	var out []*kong.Node
	for _, c := range node.Children {
		if c.Type == kong.CommandNode && !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// helpFlags lists the flags of node followed by the global flags.
func helpFlags(ctx *kong.Context, node *kong.Node) []helpFlag {
	flags := []helpFlag{{flags: "-h, --help", help: "Show context-sensitive help."}}

	seen := map[string]bool{"help": true}
	add := func(fs []*kong.Flag) {
		for _, f := range fs {
			if f.Hidden || seen[f.Name] {
				continue
			}
			seen[f.Name] = true

			name := "--" + f.Name
			if f.Short != 0 {
				name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
			}
			if !f.IsBool() {
				name += "=" + f.FormatPlaceHolder()
			}

			flags = append(flags, helpFlag{flags: name, help: f.Help, defaultVal: f.Default})
		}
	}

	add(node.Flags)
	if node != ctx.Model.Node {
		add(ctx.Model.Node.Flags)
	}
	return flags
}
