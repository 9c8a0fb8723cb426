package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jward/jassdoc"
	"github.com/jward/jassdoc/internal/model"
	"github.com/jward/jassdoc/internal/resolve"
	"github.com/spf13/cobra"
)

var flagIn string

var lookupCmd = &cobra.Command{
	Use:   "lookup <field> <text> [script...]",
	Short: "Show how an expression resolves",
	Long: "Resolve text as if it appeared in a field of the given kind and show the winning object. " +
		"Fields: type, value, size, default, module, function, hook, textmacro, keyword. " +
		"Use --in kind:name to resolve thistype and super inside an object.",
	Args: cobra.MinimumNArgs(2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&flagIn, "in", "", "context object as kind:name, e.g. method:create")
}

func runLookup(cmd *cobra.Command, args []string) error {
	field, ok := resolve.ParseFieldKind(args[0])
	if !ok {
		return outputError("lookup", fmt.Errorf("unknown field kind %q", args[0]))
	}
	cfg, err := loadConfig()
	if err != nil {
		return outputError("lookup", err)
	}
	e, err := loadEngine(context.Background(), cfg, args[2:])
	if err != nil {
		return outputError("lookup", err)
	}

	q := e.Query()
	var at jassdoc.ObjectID
	if flagIn != "" {
		at, err = findContext(q, flagIn)
		if err != nil {
			return outputError("lookup", err)
		}
	}

	res := q.Evaluate(at, field, args[1])
	out := CLILookup{
		Field:    field.String(),
		Text:     args[1],
		Expanded: res.Expanded,
		Outcome:  res.Outcome.String(),
	}
	if res.Ref.IsValid() {
		target := toCLIObject(q.Get(res.Ref))
		out.Target = &target
	}
	return outputResult(CLIResult{Command: "lookup", Results: out})
}

// findContext parses a "kind:name" reference to a declared object.
func findContext(q *jassdoc.Query, ref string) (jassdoc.ObjectID, error) {
	kindName, name, ok := strings.Cut(ref, ":")
	if !ok || name == "" {
		return model.NoObject, fmt.Errorf("invalid context %q: want kind:name", ref)
	}
	k, ok := model.ParseKind(kindName)
	if !ok {
		return model.NoObject, fmt.Errorf("invalid context %q: unknown kind %q", ref, kindName)
	}
	o, ok := q.Find(k, name)
	if !ok {
		return model.NoObject, fmt.Errorf("no %s named %q", k.Singular(), name)
	}
	return o.Common().ID, nil
}
