package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/limaJavier/advisories/pkg/people"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Input is the population read from an input file
type Input struct {
	Students []people.Student `json:"students" mapstructure:"students"`
}

var groupingType = reflect.TypeOf(Grouping{})

// InputFromFile reads students from a .json, .yaml or .yml file
func InputFromFile(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, fmt.Errorf("reading input file: %w", err)
	}

	var inputMap map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &inputMap)
	default:
		err = json.Unmarshal(bytes, &inputMap)
	}
	if err != nil {
		return Input{}, fmt.Errorf("parsing input file %v: %w", file, err)
	}

	return InputFromMap(inputMap)
}

// InputFromMap decodes an already parsed input document. Values that cannot be converted
// (an unknown grade or sex, a malformed teacher) fail with ErrValidation.
func InputFromMap(inputMap map[string]any) (Input, error) {
	var input Input
	if err := decode(inputMap, &input, false); err != nil {
		return Input{}, fmt.Errorf("%w: decoding input: %w", ErrValidation, err)
	}
	return input, nil
}

// DecodeSettings decodes a raw settings map (e.g. the one produced by a configuration loader).
// Keys are matched case-insensitively and scalar strings are converted to the field types.
// A grouping may be written either as {id, teachers} or as a plain list of teacher names.
func DecodeSettings(settingsMap map[string]any) (Settings, error) {
	settings := Settings{Weights: DefaultWeights()}
	if err := decode(settingsMap, &settings, true); err != nil {
		return Settings{}, fmt.Errorf("%w: decoding settings: %w", ErrValidation, err)
	}
	return settings, nil
}

func decode(input any, result any, weaklyTyped bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			groupingHook,
			people.DecodeHook(),
		),
		WeaklyTypedInput: weaklyTyped,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func groupingHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != groupingType || (from.Kind() != reflect.Slice && from.Kind() != reflect.Array) {
		return data, nil
	}
	return map[string]any{"teachers": data}, nil
}
