package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an intake file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrInvalidIntake wraps validation failures reported by ValidateIntake.
var ErrInvalidIntake = errors.New("invalid intake")

// FormatFromPath picks the decoder by file extension; anything that is not
// .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadIntake reads, parses and normalizes an intake file.
func LoadIntake(path string) (*domain.Intake, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseIntake(data, FormatFromPath(path))
}

// ParseIntake decodes raw intake bytes and normalizes the result.
func ParseIntake(data []byte, format Format) (*domain.Intake, error) {
	var in domain.Intake
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing intake yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&in); err != nil {
			return nil, fmt.Errorf("parsing intake json: %w", err)
		}
	}
	Normalize(&in)
	return &in, nil
}

// MarshalIntake encodes an intake for saving, e.g. after the wizard runs.
func MarshalIntake(in *domain.Intake, format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(in)
	}
	return json.MarshalIndent(in, "", "  ")
}

// Normalize trims free text, drops blank flow steps, removes duplicate
// selections and replaces nil sequences with empty ones.
func Normalize(in *domain.Intake) {
	for _, f := range textFields(in) {
		*f = strings.TrimSpace(*f)
	}
	in.Scope = distinctTrimmed(in.Scope)
	in.Priority = distinctTrimmed(in.Priority)

	steps := make([]string, 0, len(in.FlowSteps))
	for _, s := range in.FlowSteps {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	in.FlowSteps = steps
}

func distinctTrimmed(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func textFields(in *domain.Intake) []*string {
	return []*string{
		&in.CompanyName, &in.ContactName, &in.Email, &in.Phone, &in.BestContact,
		&in.OneSentence, &in.Problem, &in.Success, &in.Deadline,
		&in.ScopeOther, &in.ScopeDescription, &in.Exclusions,
		&in.WebsiteURL, &in.ExistingContent, &in.BrandAssets, &in.MediaAssets,
		&in.CustomerData, &in.OfferDetails, &in.PastMarketing, &in.CaseStudies,
		&in.ToolAccess, &in.FolderLink,
		&in.PriorityOther, &in.Involvement,
		&in.FinalNotes, &in.Signature, &in.SignDate,
	}
}
