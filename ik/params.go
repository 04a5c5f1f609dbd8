package ik

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// ParseParams decodes raw parameters, such as those read from a config file
// or a query string. Values may be numbers or numeric strings. Every field
// must be present, and unknown keys are an error.
func ParseParams(raw map[string]interface{}) (Params, error) {
	var p Params

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &p,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ErrorUnset:       true,
	})
	if err != nil {
		return p, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Params{}, errors.Wrap(err, "invalid ik params")
	}

	return p, nil
}
