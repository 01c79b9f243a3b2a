package decoder

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

type URLDecoder struct {
	dec *schema.Decoder
}

func New() *URLDecoder {
	dec := schema.NewDecoder()
	dec.SetAliasTag("schema")
	dec.IgnoreUnknownKeys(false)
	return &URLDecoder{dec: dec}
}

func (d *URLDecoder) IgnoreUnknownKeys(i bool) {
	d.dec.IgnoreUnknownKeys(i)
}

// Decode fills dst from query values. Errors name the offending parameter.
func (d *URLDecoder) Decode(dst any, src url.Values) error {
	err := d.dec.Decode(dst, src)
	if err == nil {
		return nil
	}
	var multi schema.MultiError
	if errors.As(err, &multi) {
		for key, fieldErr := range multi {
			var unknown schema.UnknownKeyError
			if errors.As(fieldErr, &unknown) {
				return fmt.Errorf("unknown query parameter %q", key)
			}
			return fmt.Errorf("invalid value for query parameter %q", key)
		}
	}
	return err
}
