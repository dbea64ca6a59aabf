package widget

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// DecodeOptions decodes raw configuration options into the given
// widget options struct.
func DecodeOptions(t Type, options any, result any) error {
	if options == nil {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         nil,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result: result,
	})
	if err != nil {
		return errors.Wrapf(err, "could not create '%s' widget options decoder", t)
	}

	if err := decoder.Decode(options); err != nil {
		return errors.Wrapf(err, "could not parse '%s' widget options", t)
	}

	return nil
}
