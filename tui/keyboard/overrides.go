package keyboard

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
)

// zoneFields are bound to the zone grid and cannot be rebound.
var zoneFields = map[string]bool{"Inner": true, "Outer": true}

// ApplyOverrides rebinds KeyMap fields from config. Config keys are the
// snake_case field names (next_layout -> NextLayout). Keys that already select
// a zone are dropped, and an override left with no keys is ignored. The help
// description of the default binding is kept.
func ApplyOverrides(km *KeyMap, overrides map[string][]string) {
	if km == nil || len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km).Elem()
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		if fieldType.Type != bindingType || zoneFields[fieldType.Name] {
			continue
		}

		keys := usableKeys(overrides[camelToSnake(fieldType.Name)])
		if len(keys) == 0 {
			continue
		}
		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

func usableKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, isZone := ZoneForKey(k); isZone {
			continue
		}
		out = append(out, k)
	}
	return out
}

// camelToSnake converts NextLayout to next_layout.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
