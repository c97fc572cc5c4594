package config

import "strings"

// KeyMapConfig holds user overrides for keybindings, keyed by action name.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present. An
// empty list is ignored so an action can never be left unbound.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	keys, ok := k.Bindings[action]
	if !ok {
		keys, ok = k.Bindings[strings.ToLower(action)]
	}
	if !ok || len(keys) == 0 {
		return nil, false
	}
	return keys, true
}
