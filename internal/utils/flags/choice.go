package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefixConstant = "<"
	choicePlaceholderSuffixConstant = ">"
	choiceSeparatorConstant         = "|"
	choiceUsageBareTemplateConstant = "`%s`"
	choiceUsageFullTemplateConstant = "`%s` %s"
)

// FormatChoiceUsage builds a usage string where the default option appears capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))

	displayChoices := make([]string, 0, len(choices))
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}
		if strings.EqualFold(trimmedChoice, normalizedDefault) {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		displayChoices = append(displayChoices, trimmedChoice)
	}

	placeholder := choicePlaceholderPrefixConstant +
		strings.Join(displayChoices, choiceSeparatorConstant) +
		choicePlaceholderSuffixConstant

	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(choiceUsageBareTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplateConstant, placeholder, trimmedDescription)
}
