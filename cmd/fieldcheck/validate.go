package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// ErrInvalidInput is returned when at least one field fails validation.
var ErrInvalidInput = errors.New("form input is invalid")

func newValidateCmd(a *app) *cobra.Command {
	var schemaFile string
	cmd := &cobra.Command{
		Use:   "validate -s FILE [name=value...]",
		Short: "Validate values against the fields of a schema document",
		Long: `Load a YAML or JSON schema, prefill its fields from their "value" keys,
apply the given name=value inputs and print the status of every field.

The command exits with a non-zero status when any field is invalid. A name
given more than once is passed to its field as a list.

Examples:
  fieldcheck validate -s checkout.yaml price=12.5 email=ada@example.com
  fieldcheck validate -s checkout.json --log-level debug price=abc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInputs(args)
			if err != nil {
				return err
			}

			form, err := formkit.Load(cmd.Context(), schemaFile, a.registry)
			if err != nil {
				return err
			}

			bindErr := formkit.Bind(form, values)
			var verr formkit.ValidationError
			if bindErr != nil && !errors.As(bindErr, &verr) {
				a.log.Error("failed to apply inputs", logger.Error(bindErr))
				return bindErr
			}

			if err := printFields(cmd, form); err != nil {
				return err
			}
			if len(verr) > 0 {
				a.log.Debug("validation failed", slog.Any("fields", verr.Fields()))
				return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(verr.Fields(), ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaFile, "schema", "s", "", "schema document (.yaml, .yml or .json)")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func parseInputs(args []string) (url.Values, error) {
	values := url.Values{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = sanitizer.Apply(name, sanitizer.RemoveControlChars, sanitizer.Trim)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid input %q: expected name=value", arg)
		}
		values.Add(name, value)
	}
	return values, nil
}

func printFields(cmd *cobra.Command, form *field.Collection) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE\tSTATE\tSTATUS\tVALUE\tERRORS")
	for f := range form.All() {
		status, msgs := "valid", f.Errors()
		if !f.IsValid() {
			status = "invalid"
			if len(msgs) == 0 && f.IsRequired() {
				msgs = []string{field.RequiredMessage}
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Name(), f.Type(), f.State().Name(), status, display(f.Value()), strings.Join(msgs, " "))
	}
	return w.Flush()
}

func display(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(v)
}
