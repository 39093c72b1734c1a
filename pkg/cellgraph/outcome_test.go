package cellgraph

import "testing"

func TestOutcomeJoin(t *testing.T) {
	cases := []struct {
		a, b, want Outcome
	}{
		{OutcomeUnchanged, OutcomeUnchanged, OutcomeUnchanged},
		{OutcomeUnchanged, OutcomeChanged, OutcomeChanged},
		{OutcomeChanged, OutcomeUnchanged, OutcomeChanged},
		{OutcomeChanged, OutcomeChanged, OutcomeChanged},
		{OutcomePending, OutcomeUnchanged, OutcomePending},
		{OutcomePending, OutcomeChanged, OutcomePending},
		{OutcomeUnchanged, OutcomePending, OutcomePending},
		{OutcomeChanged, OutcomePending, OutcomePending},
	}
	for _, tc := range cases {
		if got := tc.a.join(tc.b); got != tc.want {
			t.Errorf("%v.join(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeChanged.String() != "changed" || OutcomePending.String() != "pending" || OutcomeUnchanged.String() != "unchanged" {
		t.Error("unexpected outcome names")
	}
}
