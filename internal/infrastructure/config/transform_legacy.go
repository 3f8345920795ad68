package config

import (
	"strings"

	"github.com/bnema/shellgrid/internal/domain/entity"
)

// LegacyConfigTransformer implements port.ConfigTransformer.
// It rewrites layout settings that older versions stored differently.
type LegacyConfigTransformer struct{}

// NewLegacyConfigTransformer creates a new transformer.
func NewLegacyConfigTransformer() *LegacyConfigTransformer {
	return &LegacyConfigTransformer{}
}

// TransformLegacyLayout rewrites, in place:
//
//	[workbench.activityBar] visible = false  ->  location = "hidden"
//	[workbench.editor] showTabs = true/false ->  "multiple"/"single"
//	[zenMode] hideTabs = true/false          ->  showTabs = "none"/"multiple"
//
// It returns one description per applied rewrite.
func (t *LegacyConfigTransformer) TransformLegacyLayout(raw map[string]any) []string {
	var applied []string

	if activityBar := lookupTable(raw, "workbench", "activityBar"); activityBar != nil {
		if visibleKey, visible, ok := lookupBool(activityBar, "visible"); ok {
			delete(activityBar, visibleKey)
			if !visible {
				locationKey := matchKey(activityBar, "location")
				current, _ := activityBar[locationKey].(string)
				if current == "" || current == string(entity.ActivityBarLocationDefault) {
					activityBar[locationKey] = string(entity.ActivityBarLocationHidden)
				}
			}
			applied = append(applied, entity.SettingActivityBarVisible+" -> "+entity.SettingActivityBarLocation)
		}
	}

	if editor := lookupTable(raw, "workbench", "editor"); editor != nil {
		if key, show, ok := lookupBool(editor, "showTabs"); ok {
			mode := entity.EditorTabsMultiple
			if !show {
				mode = entity.EditorTabsSingle
			}
			editor[key] = string(mode)
			applied = append(applied, entity.SettingEditorShowTabs+": bool -> "+string(mode))
		}
	}

	if zen := lookupTable(raw, "zenMode"); zen != nil {
		if key, hide, ok := lookupBool(zen, "hideTabs"); ok {
			delete(zen, key)
			mode := entity.EditorTabsMultiple
			if hide {
				mode = entity.EditorTabsNone
			}
			if _, exists := zen[matchKey(zen, "showTabs")]; !exists {
				zen["showTabs"] = string(mode)
			}
			applied = append(applied, "zenMode.hideTabs -> "+entity.SettingZenModeShowTabs)
		}
	}

	return applied
}

// lookupTable walks nested tables, matching names case-insensitively.
func lookupTable(raw map[string]any, path ...string) map[string]any {
	current := raw
	for _, name := range path {
		next, ok := current[matchKey(current, name)].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func lookupBool(table map[string]any, name string) (string, bool, bool) {
	key := matchKey(table, name)
	v, ok := table[key].(bool)
	return key, v, ok
}

// matchKey returns the existing spelling of name in table, or name itself.
func matchKey(table map[string]any, name string) string {
	for k := range table {
		if strings.EqualFold(k, name) {
			return k
		}
	}
	return name
}
