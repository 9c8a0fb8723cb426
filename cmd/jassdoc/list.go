package main

import (
	"context"
	"fmt"

	"github.com/jward/jassdoc"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/render"
	"github.com/spf13/cobra"
)

var flagLimit int

var listCmd = &cobra.Command{
	Use:   "list <kind> [script...]",
	Short: "List the declared objects of one category",
	Long:  "List the objects of a category in declaration order. Kind is singular or plural, e.g. struct or structs.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&flagLimit, "limit", 0, "show at most this many objects (0: all)")
}

func runList(cmd *cobra.Command, args []string) error {
	k, ok := model.ParseKind(args[0])
	if !ok {
		return outputError("list", fmt.Errorf("unknown kind %q", args[0]))
	}
	cfg, err := loadConfig()
	if err != nil {
		return outputError("list", err)
	}
	e, err := loadEngine(context.Background(), cfg, args[1:])
	if err != nil {
		return outputError("list", err)
	}

	objs := e.Query().Objects(k)
	total := len(objs)
	if flagLimit > 0 && flagLimit < total {
		objs = objs[:flagLimit]
	}
	results := make([]CLIObject, 0, len(objs))
	for _, o := range objs {
		results = append(results, toCLIObject(o))
	}
	return outputResult(CLIResult{
		Command:    "list",
		Results:    results,
		TotalCount: &total,
	})
}

func toCLIObject(o jassdoc.Object) CLIObject {
	b := o.Common()
	return CLIObject{
		Kind:  b.ID.Kind.Singular(),
		Index: b.ID.Index,
		Name:  b.Name,
		File:  b.Loc.File,
		Line:  b.Loc.Line,
		Page:  render.PagePath(b.ID),
	}
}
