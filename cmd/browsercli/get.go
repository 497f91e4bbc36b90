package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polzovatel/browsercli/internal/browser"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read a property of the page or an element",
	}
	cmd.AddCommand(
		newGetTitleCmd(),
		newGetURLCmd(),
		newGetTextCmd(),
		newGetHTMLCmd(),
		newGetValueCmd(),
		newGetAttrCmd(),
		newGetCountCmd(),
	)
	return cmd
}

func evalAndPrintString(cmd *cobra.Command, expr string) error {
	return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
		raw, err := tab.Transport.Eval(ctx, expr)
		if err != nil {
			return err
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			fmt.Println(string(raw))
			return nil
		}
		fmt.Println(s)
		return nil
	})
}

func newGetTitleCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "title",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalAndPrintString(cmd, "document.title")
		},
	}
}

func newGetURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "url",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalAndPrintString(cmd, "document.location.href")
		},
	}
}

func newGetTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "text <selector>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := fmt.Sprintf(`(function(){var el=document.querySelector(%s); return el ? el.innerText : null;})()`, jsString(args[0]))
			return evalAndPrintString(cmd, expr)
		},
	}
}

func newGetHTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "html <selector>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := fmt.Sprintf(`(function(){var el=document.querySelector(%s); return el ? el.innerHTML : null;})()`, jsString(args[0]))
			return evalAndPrintString(cmd, expr)
		},
	}
}

func newGetValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "value <selector>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := fmt.Sprintf(`(function(){var el=document.querySelector(%s); return el ? el.value : null;})()`, jsString(args[0]))
			return evalAndPrintString(cmd, expr)
		},
	}
}

func newGetAttrCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "attr <selector> <name>",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := fmt.Sprintf(`(function(){var el=document.querySelector(%s); return el ? el.getAttribute(%s) : null;})()`,
				jsString(args[0]), jsString(args[1]))
			return evalAndPrintString(cmd, expr)
		},
	}
}

func newGetCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "count <selector>",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTab(cmd, func(ctx context.Context, tab *browser.Tab) error {
				expr := fmt.Sprintf(`document.querySelectorAll(%s).length`, jsString(args[0]))
				raw, err := tab.Transport.Eval(ctx, expr)
				if err != nil {
					return err
				}
				fmt.Println(string(raw))
				return nil
			})
		},
	}
}
