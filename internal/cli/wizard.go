package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/briefsmith/internal/cli/formatter"
	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/alexanderramin/briefsmith/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// defaultFlowSlots is how many blank user-flow steps the wizard starts with.
const defaultFlowSlots = 3

var errConsentRequired = errors.New("confirm the information is accurate to continue")

// briefsmithHuhTheme returns a custom huh theme using the Gruvbox palette.
func briefsmithHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// flowState holds the user-flow inputs while the wizard runs. Slots may be
// blank; steps() drops those.
type flowState struct {
	slots []string
}

func newFlowState() flowState {
	return flowState{slots: make([]string, defaultFlowSlots)}
}

// addFlowSlot returns a copy of f with one more blank slot.
func addFlowSlot(f flowState) flowState {
	slots := make([]string, len(f.slots), len(f.slots)+1)
	copy(slots, f.slots)
	return flowState{slots: append(slots, "")}
}

// removeFlowSlot returns a copy of f without slot i. Out-of-range indexes
// and removing the last remaining slot leave f unchanged.
func removeFlowSlot(f flowState, i int) flowState {
	if i < 0 || i >= len(f.slots) || len(f.slots) == 1 {
		return flowState{slots: slices.Clone(f.slots)}
	}
	return flowState{slots: slices.Delete(slices.Clone(f.slots), i, i+1)}
}

// steps returns the trimmed, non-blank steps in order.
func (f flowState) steps() []string {
	out := make([]string, 0, len(f.slots))
	for _, s := range f.slots {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func atLeastOne(field string) func([]string) error {
	return func(v []string) error {
		if len(v) == 0 {
			return fmt.Errorf("select at least one %s", field)
		}
		return nil
	}
}

func requireConsent(v bool) error {
	if !v {
		return errConsentRequired
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return importer.ValidateDate(strings.TrimSpace(s))
}

func scopeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(domain.ScopeOptions))
	for i, o := range domain.ScopeOptions {
		opts[i] = huh.NewOption(string(o), string(o))
	}
	return opts
}

func priorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(domain.PriorityOptions))
	for i, o := range domain.PriorityOptions {
		opts[i] = huh.NewOption(string(o), string(o))
	}
	return opts
}

func involvementOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(domain.InvolvementOptions))
	for i, o := range domain.InvolvementOptions {
		opts[i] = huh.NewOption(string(o), string(o))
	}
	return opts
}

// wizardIntakeForm covers contact details, the project, scope and source
// materials.
func wizardIntakeForm(in *domain.Intake) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Company name").Value(&in.CompanyName).
				Validate(importer.RequiredText("Company name")),
			huh.NewInput().Title("Your name").Value(&in.ContactName).
				Validate(importer.RequiredText("Your name")),
			huh.NewInput().Title("Email").Value(&in.Email).
				Validate(importer.ValidateEmail),
			huh.NewInput().Title("Phone").Value(&in.Phone),
			huh.NewSelect[string]().Title("Best way to reach you").
				Options(
					huh.NewOption("No preference", ""),
					huh.NewOption("Email", "Email"),
					huh.NewOption("Phone", "Phone"),
					huh.NewOption("Text message", "Text message"),
					huh.NewOption("Video call", "Video call"),
				).
				Value(&in.BestContact),
		).Title("About you"),

		huh.NewGroup(
			huh.NewInput().Title("In one sentence, what are we building?").Value(&in.OneSentence).
				Validate(importer.RequiredText("Project goal")),
			huh.NewText().Title("What problem does this solve?").Lines(3).Value(&in.Problem).
				Validate(importer.RequiredText("Problem")),
			huh.NewText().Title("What does success look like?").Lines(3).Value(&in.Success).
				Validate(importer.RequiredText("Success")),
			huh.NewInput().Title("Deadline").Placeholder("Flexible").Value(&in.Deadline),
		).Title("The project"),

		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("What do you need?").
				Options(scopeOptions()...).
				Value(&in.Scope).
				Validate(atLeastOne("scope option")),
		).Title("Scope"),

		huh.NewGroup(
			huh.NewInput().Title("Describe the other work").Value(&in.ScopeOther),
		).WithHideFunc(func() bool {
			return !slices.Contains(in.Scope, string(domain.ScopeOther))
		}),

		huh.NewGroup(
			huh.NewText().Title("Anything else about the scope?").Lines(3).Value(&in.ScopeDescription),
			huh.NewText().Title("What is out of scope?").Lines(2).Value(&in.Exclusions),
		).Title("Scope details"),

		huh.NewGroup(
			huh.NewInput().Title("Current website").Placeholder("https://").Value(&in.WebsiteURL),
			huh.NewInput().Title("Existing content").Value(&in.ExistingContent),
			huh.NewInput().Title("Brand assets").Value(&in.BrandAssets),
			huh.NewInput().Title("Photos and media").Value(&in.MediaAssets),
			huh.NewInput().Title("Customer data").Value(&in.CustomerData),
		).Title("Source materials"),

		huh.NewGroup(
			huh.NewInput().Title("Offer details").Value(&in.OfferDetails),
			huh.NewInput().Title("Past marketing").Value(&in.PastMarketing),
			huh.NewInput().Title("Case studies or testimonials").Value(&in.CaseStudies),
			huh.NewInput().Title("Tools we will need access to").Value(&in.ToolAccess),
			huh.NewInput().Title("Shared folder link").Value(&in.FolderLink),
		).Title("Source materials (continued)"),
	).WithTheme(briefsmithHuhTheme()).WithShowHelp(false)
}

type flowAction string

const (
	flowContinue flowAction = "continue"
	flowAdd      flowAction = "add"
	flowRemove   flowAction = "remove"
)

// wizardFlowForm edits the user-flow slots and asks what to do next.
func wizardFlowForm(f flowState, action *flowAction) *huh.Form {
	*action = flowContinue

	fields := make([]huh.Field, 0, len(f.slots)+2)
	fields = append(fields, huh.NewNote().
		Title("User flow").
		Description("Walk us through what a customer does, one step at a time."))
	for i := range f.slots {
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("Step %d", i+1)).
			Placeholder("What happens next?").
			Value(&f.slots[i]))
	}

	options := []huh.Option[flowAction]{
		huh.NewOption("Continue", flowContinue),
		huh.NewOption("Add another step", flowAdd),
	}
	if len(f.slots) > 1 {
		options = append(options, huh.NewOption("Remove the last step", flowRemove))
	}
	fields = append(fields, huh.NewSelect[flowAction]().
		Title("Next").
		Options(options...).
		Value(action))

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(briefsmithHuhTheme()).WithShowHelp(false)
}

// nextFlowState applies a flow action.
func nextFlowState(f flowState, action flowAction) (flowState, bool) {
	switch action {
	case flowAdd:
		return addFlowSlot(f), false
	case flowRemove:
		return removeFlowSlot(f, len(f.slots)-1), false
	default:
		return f, true
	}
}

// wizardClosingForm covers expectations and the sign-off.
func wizardClosingForm(in *domain.Intake, consent *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("What matters most?").
				Options(priorityOptions()...).
				Value(&in.Priority).
				Validate(atLeastOne("priority")),
		).Title("Expectations"),

		huh.NewGroup(
			huh.NewInput().Title("Describe the other priority").Value(&in.PriorityOther),
		).WithHideFunc(func() bool {
			return !slices.Contains(in.Priority, string(domain.PriorityOther))
		}),

		huh.NewGroup(
			huh.NewSelect[string]().Title("How involved do you want to be?").
				Options(involvementOptions()...).
				Value(&in.Involvement).
				Validate(importer.RequiredText("Involvement")),
			huh.NewText().Title("Anything else we should know?").Lines(3).Value(&in.FinalNotes),
		).Title("Working together"),

		huh.NewGroup(
			huh.NewInput().Title("Signature (type your full name)").Value(&in.Signature).
				Validate(importer.RequiredText("Signature")),
			huh.NewInput().Title("Date").Placeholder("YYYY-MM-DD").Value(&in.SignDate).
				Validate(validateOptionalDate),
			huh.NewConfirm().
				Title("I confirm this information is accurate").
				Affirmative("Yes").
				Negative("No").
				Value(consent).
				Validate(requireConsent),
		).Title("Confirmation"),
	).WithTheme(briefsmithHuhTheme()).WithShowHelp(false)
}

// runWizard collects an intake interactively. The result is normalized the
// same way an intake file is.
func runWizard(ctx context.Context) (*domain.Intake, error) {
	in := &domain.Intake{
		SignDate: time.Now().Format("2006-01-02"),
	}

	if err := wizardIntakeForm(in).RunWithContext(ctx); err != nil {
		return nil, err
	}

	flow := newFlowState()
	for done := false; !done; {
		var action flowAction
		if err := wizardFlowForm(flow, &action).RunWithContext(ctx); err != nil {
			return nil, err
		}
		flow, done = nextFlowState(flow, action)
	}
	in.FlowSteps = flow.steps()

	consent := false
	if err := wizardClosingForm(in, &consent).RunWithContext(ctx); err != nil {
		return nil, err
	}

	importer.Normalize(in)
	return in, nil
}
