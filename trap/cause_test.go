package trap

import "testing"

func TestCauseString(t *testing.T) {
	tests := []struct {
		cause Cause
		want  string
	}{
		{CauseIllegalInstruction, "Illegal Instruction"},
		{CauseStoreFault, "Store Access Fault"},
		{Cause(10), "Cause(10)"},
		{Cause(100), "Cause(100)"},
	}
	for _, tt := range tests {
		if got := tt.cause.String(); got != tt.want {
			t.Errorf("Cause(%d).String() = %q, want %q", uint64(tt.cause), got, tt.want)
		}
	}
}
