package rules

import (
	"regexp"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

// patternRule contributes its fragment when Pattern matches anywhere in the
// corpus. All matching rules fire.
type patternRule struct {
	Pattern  *regexp.Regexp
	Fragment domain.LabelValue
}

var marketingRules = []patternRule{
	{
		Pattern:  regexp.MustCompile(`lead|capture|convert|funnel|visitor`),
		Fragment: domain.LabelValue{Label: "Funnel Type", Value: "Lead acquisition funnel — capture, qualify, nurture, hand off to sales"},
	},
	{
		Pattern:  regexp.MustCompile(`email|newsletter|drip|campaign|sequence`),
		Fragment: domain.LabelValue{Label: "Channel", Value: "Email marketing — lifecycle sequences with behavioral triggers"},
	},
	{
		Pattern:  regexp.MustCompile(`brand|trust|credib|design|look|modern`),
		Fragment: domain.LabelValue{Label: "Brand Play", Value: "Brand trust and credibility — design-led approach to build authority"},
	},
	{
		Pattern:  regexp.MustCompile(`automat|effic|save time|manual`),
		Fragment: domain.LabelValue{Label: "Value Prop", Value: `Operational efficiency — "do more with less" through automation`},
	},
	{
		Pattern:  regexp.MustCompile(`revenue|sales|roi|profit|money|growth`),
		Fragment: domain.LabelValue{Label: "KPI Focus", Value: "Revenue attribution — tie every touchpoint back to dollars generated"},
	},
	{
		Pattern:  regexp.MustCompile(`data|report|dashboard|insight|metric|track`),
		Fragment: domain.LabelValue{Label: "Intelligence", Value: "Data-driven decision making — real-time visibility into what's working"},
	},
	{
		Pattern:  regexp.MustCompile(`booking|schedule|call|appointment|demo`),
		Fragment: domain.LabelValue{Label: "Conversion Goal", Value: "Appointment setting — reduce friction from interest to booked call"},
	},
}

// revenuePattern marks a corpus that talks about selling something.
var revenuePattern = regexp.MustCompile(`lead|sales|revenue|convert`)

func matchPatterns(rules []patternRule, corpus string) []domain.LabelValue {
	var out []domain.LabelValue
	for _, r := range rules {
		if r.Pattern.MatchString(corpus) {
			out = append(out, r.Fragment)
		}
	}
	return out
}

// Marketing returns the topic fragments whose keyword clusters appear in the
// corpus, followed by the client's pain point and win state in their words.
func Marketing(in *domain.Intake, corpus string) []domain.LabelValue {
	out := matchPatterns(marketingRules, corpus)
	if in.Problem != "" {
		out = append(out, domain.LabelValue{
			Label: "Client Pain Point",
			Value: `"` + FirstSentence(in.Problem) + `" — use this as the anchor for all messaging`,
		})
	}
	if in.Success != "" {
		out = append(out, domain.LabelValue{
			Label: "Win State",
			Value: `"` + FirstSentence(in.Success) + `" — this is what done looks like in their words`,
		})
	}
	return out
}
