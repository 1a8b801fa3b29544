package cli

import (
	"testing"
)

func TestDeployTargetFlags(t *testing.T) {
	// Disabling both targets leaves nothing to do.
	rootCmd.SetArgs([]string{"deploy", "somedir", "--github=false", "--netlify=false"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("deploy with no target expected an error")
	}

	// The Netlify path only prints instructions, so it succeeds even when
	// GitHub deployment is off.
	rootCmd.SetArgs([]string{"deploy", "somedir", "--github=false", "--netlify"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("netlify deploy error = %v", err)
	}
}
