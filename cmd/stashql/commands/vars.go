package commands

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/stashql/internal/core/domain"
	"go.trai.ch/zerr"
)

// addVarFlags registers the variable flags shared by query, mutate and subscribe.
func addVarFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("var", nil, "Set a string variable as key=value (repeatable)")
	cmd.Flags().String("vars", "", "Variables as a JSON object; --var entries are applied on top")
}

// variables merges --vars and --var into one map. A nil map means no variables.
func variables(cmd *cobra.Command) (map[string]any, error) {
	var vars map[string]any

	raw, _ := cmd.Flags().GetString("vars")
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &vars); err != nil {
			return nil, zerr.Wrap(err, "--vars must be a JSON object")
		}
	}

	pairs, _ := cmd.Flags().GetStringArray("var")
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, zerr.With(zerr.New("--var must be key=value"), "var", p)
		}
		if vars == nil {
			vars = make(map[string]any, len(pairs))
		}
		vars[key] = value
	}
	return vars, nil
}

// printData writes the data object of a result as indented JSON.
func printData(w io.Writer, res *domain.Result) error {
	out, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
