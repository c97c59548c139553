package stage

import "testing"

func TestFilterPassesRemovesDisabled(t *testing.T) {
	passes := []string{"-instcombine", "-simplifycfg", "-gvn"}
	disabled := disabledSet([]string{"-simplifycfg"}, nil)

	got := filterPasses(passes, disabled)
	want := []string{"-instcombine", "-gvn"}

	if len(got) != len(want) {
		t.Fatalf("filterPasses() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filterPasses() = %v, want %v", got, want)
		}
	}
}

func TestFilterPassesPreservesOrder(t *testing.T) {
	passes := []string{"-a", "-b", "-c", "-d"}
	disabled := disabledSet(nil, []string{"-a", "-c"})

	got := filterPasses(passes, disabled)
	want := []string{"-b", "-d"}

	if len(got) != len(want) {
		t.Fatalf("filterPasses() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("filterPasses()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDisabledSetMergesBothSources(t *testing.T) {
	set := disabledSet([]string{"-x"}, []string{"-y"})
	if _, ok := set["-x"]; !ok {
		t.Fatalf("expected -x in disabled set")
	}
	if _, ok := set["-y"]; !ok {
		t.Fatalf("expected -y in disabled set")
	}
}
