package utils

import "fmt"

// EnumValidator returns an ent string validator accepting only the listed values.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("%q is not an allowed value", s)
		}
		return nil
	}
}
