package display

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// envJSON forces JSON output when set to a true-ish value.
const envJSON = "ARGX_JSON"

// ShouldOutputJSON determines if a command should output JSON based on flags
// and the environment
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return envWantsJSON()
	}

	// Check if --json flag was explicitly set
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return envWantsJSON()
}

func envWantsJSON() bool {
	switch os.Getenv(envJSON) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}

// OutputJSON marshals v with MarshalJSON and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
