package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/fields"
	"github.com/goliatone/go-formhelpers/pkg/formspec"
)

var errRequired = errors.New("a value is required")

// Collect asks for a value per field and returns them keyed by field name,
// ready for formspec.Document.Apply. Labels and fields without a key are
// skipped.
func Collect(ctx context.Context, driver Driver, doc formspec.Document) (map[string]string, error) {
	values := make(map[string]string, len(doc.Fields))
	for _, field := range doc.Fields {
		key := field.Key()
		if key == "" {
			continue
		}
		message := field.Label
		if strings.TrimSpace(message) == "" {
			message = key
		}

		switch strings.ToLower(strings.TrimSpace(field.Kind)) {
		case formspec.KindLabel:
			continue
		case formspec.KindCheckbox:
			answer, err := driver.Confirm(ctx, ConfirmConfig{Message: message, Default: field.Checked})
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", key, err)
			}
			values[key] = strconv.FormatBool(answer)
		case formspec.KindSelect:
			choices := field.Options
			if field.NoneOption != "" {
				choices = append(fields.Options{{Value: "", Label: field.NoneOption}}, choices...)
			}
			if len(choices) == 0 {
				continue
			}
			labels := make([]string, len(choices))
			defaultIndex := 0
			for idx, choice := range choices {
				labels[idx] = choice.Label
				if choice.Value == field.Value {
					defaultIndex = idx
				}
			}
			idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: labels, DefaultIndex: defaultIndex})
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", key, err)
			}
			if idx < 0 || idx >= len(choices) {
				continue
			}
			values[key] = choices[idx].Value
		default:
			cfg := InputConfig{Message: message, Default: field.Value}
			if field.Required {
				cfg.Validator = requireValue
			}
			answer, err := driver.Input(ctx, cfg)
			if err != nil {
				return nil, fmt.Errorf("prompt %s: %w", key, err)
			}
			values[key] = answer
		}
	}
	return values, nil
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errRequired
	}
	return nil
}
