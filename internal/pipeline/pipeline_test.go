package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledPassesForVersionNonV3(t *testing.T) {
	require.Nil(t, disabledPassesForVersion("4.0.1"))
}

func TestDisabledPassesForVersionRecentV3(t *testing.T) {
	require.Nil(t, disabledPassesForVersion("3.8.1"))
}

func TestDisabledPassesForVersionV37(t *testing.T) {
	got := disabledPassesForVersion("3.7.1")
	want := []string{"-aa", "-demanded-bits", "-globals-aa", "-forceattrs", "-inferattrs", "-rpo-functionattrs"}
	require.Equal(t, want, got)
}

func TestDisabledPassesForVersionV36AddsMore(t *testing.T) {
	got := disabledPassesForVersion("3.6.2")
	want := []string{
		"-aa", "-demanded-bits", "-globals-aa", "-forceattrs", "-inferattrs", "-rpo-functionattrs",
		"-tti", "-bdce", "-elim-avail-extern", "-float2int", "-loop-accesses",
	}
	require.Equal(t, want, got)
}

func TestReportVerdictMapping(t *testing.T) {
	cases := []struct {
		verdict string
		want    string
	}{
		{"false(unreach-call)", "RESULT: false(unreach-call)"},
		{"true", "RESULT: true"},
		{"ERROR (klee exited with code 1)", "RESULT: ERROR (klee exited with code 1)"},
		{"unknown", "RESULT: unknown"},
	}

	for _, c := range cases {
		require.Equal(t, c.want, Report(c.verdict), "Report(%q)", c.verdict)
	}
}
