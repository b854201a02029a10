package config

// mergeConfigs merges override configuration into base. Set fields in
// override win; extension maps are merged one level deep.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	result.Session = mergeSession(base.Session, override.Session)
	result.TUI = mergeTUI(base.TUI, override.TUI)
	result.Server = mergeServer(base.Server, override.Server)

	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for k, v := range base.Extensions {
			merged[k] = v
		}
		for key, value := range override.Extensions {
			if baseMap, ok := merged[key].(map[string]interface{}); ok {
				if overrideMap, ok := value.(map[string]interface{}); ok {
					mergedMap := make(map[string]interface{}, len(baseMap)+len(overrideMap))
					for k, v := range baseMap {
						mergedMap[k] = v
					}
					for k, v := range overrideMap {
						mergedMap[k] = v
					}
					merged[key] = mergedMap
					continue
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

func mergeSession(base, override *SessionConfig) *SessionConfig {
	if override == nil {
		return base
	}
	if base == nil {
		c := *override
		return &c
	}
	result := *base
	if override.StartLayout != "" {
		result.StartLayout = override.StartLayout
	}
	return &result
}

func mergeTUI(base, override *TUIConfig) *TUIConfig {
	if override == nil {
		return base
	}
	if base == nil {
		c := *override
		return &c
	}
	result := *base
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.ShowHelp != nil {
		result.ShowHelp = override.ShowHelp
	}
	if len(override.Keys) > 0 {
		keys := make(map[string][]string, len(base.Keys)+len(override.Keys))
		for k, v := range base.Keys {
			keys[k] = v
		}
		for k, v := range override.Keys {
			keys[k] = v
		}
		result.Keys = keys
	}
	return &result
}

func mergeServer(base, override *ServerConfig) *ServerConfig {
	if override == nil {
		return base
	}
	if base == nil {
		c := *override
		return &c
	}
	result := *base
	if override.Listen != "" {
		result.Listen = override.Listen
	}
	if override.Path != "" {
		result.Path = override.Path
	}
	return &result
}
