package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key scopes. The footer shows the bindings of the active scope.
const (
	scopeList      = "list"
	scopeInspector = "inspector"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to msg in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed }) {
			return b.Action, true
		}
	}
	return "", false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

const (
	actionQuit       = "quit"
	actionReload     = "reload"
	actionNextTab    = "next-tab"
	actionPrevTab    = "prev-tab"
	actionDown       = "down"
	actionUp         = "up"
	actionSelect     = "select"
	actionNextScene  = "next-scene"
	actionFocus      = "focus"
	actionDecrease   = "decrease"
	actionIncrease   = "increase"
	actionClearError = "clear-error"
	tabActionPrefix  = "tab-"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"1"}, Action: tabActionPrefix + "1", Description: "scene", Scopes: []string{"*"}},
		{Keys: []string{"2"}, Action: tabActionPrefix + "2", Description: "geometries", Scopes: []string{"*"}},
		{Keys: []string{"3"}, Action: tabActionPrefix + "3", Description: "materials", Scopes: []string{"*"}},
		{Keys: []string{"4"}, Action: tabActionPrefix + "4", Description: "textures", Scopes: []string{"*"}},
		{Keys: []string{"5"}, Action: tabActionPrefix + "5", Description: "rendering", Scopes: []string{"*"}},
		{Keys: []string{"tab"}, Action: actionNextTab, Description: "next tab", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: actionPrevTab, Description: "prev tab", Scopes: []string{"*"}},
		{Keys: []string{"r"}, Action: actionReload, Description: "reload", Scopes: []string{"*"}},
		{Keys: []string{"j", "down"}, Action: actionDown, Description: "down", Scopes: []string{scopeList, scopeInspector}},
		{Keys: []string{"k", "up"}, Action: actionUp, Description: "up", Scopes: []string{scopeList, scopeInspector}},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "select", Scopes: []string{scopeList}},
		{Keys: []string{"enter"}, Action: actionSelect, Description: "toggle", Scopes: []string{scopeInspector}},
		{Keys: []string{"s"}, Action: actionNextScene, Description: "next scene", Scopes: []string{scopeList}},
		{Keys: []string{"left", "h"}, Action: actionDecrease, Description: "prev value", Scopes: []string{scopeInspector}},
		{Keys: []string{"right", "l"}, Action: actionIncrease, Description: "next value", Scopes: []string{scopeInspector}},
		{Keys: []string{"i"}, Action: actionFocus, Description: "inspector", Scopes: []string{scopeList}},
		{Keys: []string{"esc", "i"}, Action: actionFocus, Description: "list", Scopes: []string{scopeInspector}},
		{Keys: []string{"x"}, Action: actionClearError, Description: "dismiss error", Scopes: []string{"*"}},
	}
}
