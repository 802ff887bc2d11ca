package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-webblock/pkg/model"
)

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *openapi3.Schema
)

// Parse reads a block body into a BlockConfig. Missing settings fall back to
// model.Defaults. A payload that is empty, not JSON, not an array, or holds
// buttons without string label/url fails the whole block with a
// *ParseError of KindMalformedPayload.
func Parse(text string) (model.BlockConfig, error) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(normalized), "\n")

	settings := model.Defaults()
	found := make(map[string]bool, 4)
	payloadLines := make([]string, 0, len(lines))

	for _, line := range lines {
		key, value, ok := matchSetting(line)
		if !ok {
			payloadLines = append(payloadLines, line)
			continue
		}
		if found[key] {
			continue
		}
		found[key] = true
		switch key {
		case keyWidth:
			settings.Width = value
		case keyHeight:
			settings.Height = value
		case keyButtonSize:
			settings.ButtonSize = model.ButtonSize(value)
		case keyDefaultColor:
			settings.DefaultColor = value
		}
	}

	buttons, err := decodeButtons(strings.Join(payloadLines, "\n"))
	if err != nil {
		return model.BlockConfig{}, err
	}
	return model.NewBlockConfig(buttons, settings), nil
}

// matchSetting recognises a settings line by prefix. The value runs from the
// first '=' to the next one, so "width=a=b" yields "a".
func matchSetting(line string) (string, string, bool) {
	for _, key := range []string{keyWidth, keyHeight, keyButtonSize, keyDefaultColor} {
		if !strings.HasPrefix(line, key+"=") {
			continue
		}
		parts := strings.SplitN(line, "=", 3)
		return key, parts[1], true
	}
	return "", "", false
}

func decodeButtons(payload string) ([]model.ButtonDescriptor, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, newMalformed(errors.New("button payload is empty"))
	}

	var raw any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, newMalformed(err)
	}
	if err := buttonsSchema().VisitJSON(raw); err != nil {
		return nil, newMalformed(fmt.Errorf("button payload: %w", err))
	}

	items, _ := raw.([]any)
	buttons := make([]model.ButtonDescriptor, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		buttons = append(buttons, model.ButtonDescriptor{
			Label: stringField(fields, "label"),
			URL:   stringField(fields, "url"),
			Color: stringField(fields, "color"),
		})
	}
	return buttons, nil
}

// stringField looks keys up exactly; JSON object keys are case-sensitive.
func stringField(fields map[string]any, key string) string {
	value, _ := fields[key].(string)
	return value
}

func buttonsSchema() *openapi3.Schema {
	payloadSchemaOnce.Do(func() {
		item := openapi3.NewObjectSchema().
			WithProperty("label", openapi3.NewStringSchema()).
			WithProperty("url", openapi3.NewStringSchema()).
			WithProperty("color", openapi3.NewStringSchema().WithNullable())
		item.Required = []string{"label", "url"}
		payloadSchema = openapi3.NewArraySchema().WithItems(item)
	})
	return payloadSchema
}
