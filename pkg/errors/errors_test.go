package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "WithoutCause",
			err:  New(ErrCodeInvalidInput, "radius_eff must be positive, got %g", -1.0),
			want: "INVALID_INPUT: radius_eff must be positive, got -1",
		},
		{
			name: "WithCause",
			err:  Wrap(ErrCodeRootFinding, stderrors.New("no convergence"), "influence radius solve failed"),
			want: "ROOT_FINDING: influence radius solve failed: no convergence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad input")

	if !Is(err, ErrCodeInvalidInput) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrCodeRootFinding) {
		t.Error("Is() = true, want false for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidInput) {
		t.Error("Is() = true, want false for plain error")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeRootFinding, "did not converge")
	outer := Wrap(ErrCodeInternal, inner, "solve failed")

	// errors.As stops at the first *Error, which is the outer one.
	if !Is(outer, ErrCodeInternal) {
		t.Error("Is() = false, want true for outer code")
	}
	if GetCode(outer) != ErrCodeInternal {
		t.Errorf("GetCode() = %q, want %q", GetCode(outer), ErrCodeInternal)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeInternal, cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() = false, want true for wrapped cause")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "cond_h must be positive")
	if got := UserMessage(err); got != "cond_h must be positive" {
		t.Errorf("UserMessage() = %q, want message without code prefix", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"Positive", 1.5, false},
		{"Zero", 0, true},
		{"Negative", -2, true},
		{"NaN", nan(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePositive("cond_h", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePositive(%g) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), "cond_h") {
				t.Errorf("error %q does not name the parameter", err)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	if err := ValidateNonNegative("recharge", 0); err != nil {
		t.Errorf("ValidateNonNegative(0) = %v, want nil", err)
	}
	if err := ValidateNonNegative("recharge", -1e-9); err == nil {
		t.Error("ValidateNonNegative(-1e-9) = nil, want error")
	}
	if err := ValidateNonNegative("recharge", nan()); err == nil {
		t.Error("ValidateNonNegative(NaN) = nil, want error")
	}
}

func TestValidateInOpenInterval(t *testing.T) {
	if err := ValidateInOpenInterval("threshold", 1, 0, 6); err != nil {
		t.Errorf("ValidateInOpenInterval(1, 0, 6) = %v, want nil", err)
	}
	if err := ValidateInOpenInterval("threshold", 0, 0, 6); err == nil {
		t.Error("ValidateInOpenInterval(0, 0, 6) = nil, want error at lower bound")
	}
	if err := ValidateInOpenInterval("threshold", 6, 0, 6); err == nil {
		t.Error("ValidateInOpenInterval(6, 0, 6) = nil, want error at upper bound")
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}
