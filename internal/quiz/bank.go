package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var numberChoices = []string{"1", "2", "3", "4"}

// DefaultBank returns the built-in quiz.
func DefaultBank() Bank {
	return Bank{
		Questions: []Question{
			{Text: "Which number am I thinking of?", Choices: numberChoices, CorrectChoiceIndex: 0},
			{Text: "What about now, can you guess now?", Choices: numberChoices, CorrectChoiceIndex: 1},
			{Text: "I'm thinking of a number between 1 and 4. What is it?", Choices: numberChoices, CorrectChoiceIndex: 2},
			{Text: "If I were a number between 1 and 4, which would I be?", Choices: numberChoices, CorrectChoiceIndex: 3},
			{Text: "Guess what my favorite number is", Choices: numberChoices, CorrectChoiceIndex: 0},
		},
		Praises: []string{
			"Wow. You got it right. I bet you feel really good about yourself now",
			"Correct. Which would be impressive, if it wasn't just luck",
			"Oh was I yawning? Because you getting that answer right was boring me to sleep",
			"Hear all that applause for you because you got this question right? Neither do I.",
		},
		Admonishments: []string{
			"Really? That's your guess? WE EXPECTED BETTER OF YOU!",
			"Looks like someone wasn't paying attention in telepathy school, geesh!",
			"That's incorrect. You've dissapointed yourself, your family, your city, state, country and planet, to say nothing of the cosmos",
		},
	}
}

// LoadBank reads a bank from a .toml or .json file and validates it.
func LoadBank(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, fmt.Errorf("read bank: %w", err)
	}

	var bank Bank
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		bank, err = ParseTOML(data)
	case ".json":
		bank, err = ParseJSON(data)
	default:
		return Bank{}, fmt.Errorf("unsupported bank format %q: use .toml or .json", ext)
	}
	if err != nil {
		return Bank{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return bank, nil
}

// ParseTOML decodes and validates a TOML bank.
func ParseTOML(data []byte) (Bank, error) {
	var bank Bank
	md, err := toml.Decode(string(data), &bank)
	if err != nil {
		return Bank{}, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Bank{}, &BankError{Field: undecoded[0].String(), Reason: "unknown key"}
	}
	if err := bank.Validate(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

// ParseJSON validates a JSON bank against BankSchema, then decodes it.
func ParseJSON(data []byte) (Bank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Bank{}, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledBankSchema()
	if err != nil {
		return Bank{}, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return Bank{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var bank Bank
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&bank); err != nil {
		return Bank{}, fmt.Errorf("decode json: %w", err)
	}
	if err := bank.Validate(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

// BankSchema is the JSON schema for bank files.
var BankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"text": map[string]any{"type": "string", "minLength": 1},
					"choices": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": ChoiceCount,
						"maxItems": ChoiceCount,
					},
					"correct_choice_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": ChoiceCount - 1,
					},
				},
				"required":             []any{"text", "choices", "correct_choice_index"},
				"additionalProperties": false,
			},
		},
		"praises": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
		"admonishments": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
	},
	"required":             []any{"questions", "praises", "admonishments"},
	"additionalProperties": false,
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler wants plain JSON values, so round-trip the Go map.
		raw, err := json.Marshal(BankSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quizbox-bank.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}
