package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorStrings(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func TestValidateIntake_Valid(t *testing.T) {
	errs := ValidateIntake(testutil.NewTestIntake())
	assert.Empty(t, errs)
}

func TestValidateIntake_EmptyReportsEveryRequiredField(t *testing.T) {
	errs := errorStrings(ValidateIntake(testutil.NewEmptyIntake()))

	assert.Equal(t, []string{
		"companyName is required",
		"contactName is required",
		"email: is required",
		"oneSentence is required",
		"problem is required",
		"success is required",
		"scope: select at least one option",
		"priority: select at least one option",
		"involvement is required",
		"signature is required",
	}, errs)
}

func TestValidateIntake_InvalidOptions(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithIntake(func(in *domain.Intake) {
		in.Scope = []string{string(domain.ScopeWebsite), "Podcast"}
		in.Priority = []string{"Cheapness"}
		in.Involvement = "Sometimes"
	}))

	errs := errorStrings(ValidateIntake(in))

	assert.Contains(t, errs, `scope[1]: invalid value "Podcast"`)
	assert.Contains(t, errs, `priority[0]: invalid value "Cheapness"`)
	assert.Contains(t, errs, `involvement: invalid value "Sometimes"`)
}

func TestValidateIntake_SignDate(t *testing.T) {
	in := testutil.NewTestIntake(testutil.WithIntake(func(in *domain.Intake) {
		in.SignDate = "03/01/2026"
	}))

	errs := errorStrings(ValidateIntake(in))
	assert.Equal(t, []string{"signDate: use YYYY-MM-DD format"}, errs)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "jane@acme.test", false},
		{"padded", "  jane@acme.test  ", false},
		{"missing at", "jane.acme.test", true},
		{"missing dot", "jane@acme", true},
		{"space inside", "ja ne@acme.test", true},
		{"blank", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheck_WrapsSentinel(t *testing.T) {
	assert.NoError(t, Check(testutil.NewTestIntake()))

	err := Check(testutil.NewTestIntake(testutil.WithCompany(" ")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidIntake))
	assert.Contains(t, err.Error(), "companyName is required")
}

func TestParseIntake_JSON(t *testing.T) {
	data := []byte(`{
		"companyName": "  Acme ",
		"scope": ["CRM Setup", " CRM Setup", "", "Other"],
		"priority": ["Speed"],
		"flowSteps": ["Visit", "   ", "Sign up "]
	}`)

	in, err := ParseIntake(data, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "Acme", in.CompanyName)
	assert.Equal(t, []string{"CRM Setup", "Other"}, in.Scope)
	assert.Equal(t, []string{"Visit", "Sign up"}, in.FlowSteps)
	assert.Equal(t, []string{"Speed"}, in.Priority)
}

func TestParseIntake_JSONRejectsUnknownFields(t *testing.T) {
	_, err := ParseIntake([]byte(`{"companyName":"Acme","budget":5000}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing intake json")
}

func TestParseIntake_YAML(t *testing.T) {
	data := []byte(strings.Join([]string{
		"companyName: Acme",
		"scope:",
		"  - Website / Landing Page",
		"deadline: end of Q2",
	}, "\n"))

	in, err := ParseIntake(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "Acme", in.CompanyName)
	assert.Equal(t, "end of Q2", in.Deadline)
	assert.Equal(t, []string{"Website / Landing Page"}, in.Scope)
	assert.NotNil(t, in.Priority)
	assert.NotNil(t, in.FlowSteps)
}

func TestParseIntake_YAMLRejectsUnknownFields(t *testing.T) {
	data := []byte("companyName: Acme\ncompnayWebsite: acme.test\n")

	_, err := ParseIntake(data, FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing intake yaml")
	assert.Contains(t, err.Error(), "compnayWebsite")
}

func TestParseIntake_EmptyYAMLIsEmptyIntake(t *testing.T) {
	in, err := ParseIntake(nil, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "", in.CompanyName)
	assert.NotNil(t, in.Scope)
}

func TestMarshalIntake_RoundTripsThroughParse(t *testing.T) {
	orig := testutil.NewTestIntake(testutil.WithFlowSteps("Visit", "Buy"))

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := MarshalIntake(orig, format)
			require.NoError(t, err)

			got, err := ParseIntake(data, format)
			require.NoError(t, err)
			assert.Equal(t, orig, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("intake.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("intake.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("intake.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("intake"))
}
