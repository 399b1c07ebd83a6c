package model

// MfeConfigFileName is the overlay file kept in the public folder of every
// micro frontend.
const MfeConfigFileName = "mfe-config.json"

// MfeConfig is the runtime overlay of a micro frontend. It caches the URL every
// resolved API claim points to.
type MfeConfig struct {
	SystemParams  *SystemParams  `json:"systemParams,omitempty"`
	ContextParams map[string]any `json:"contextParams,omitempty"`
	Params        map[string]any `json:"params,omitempty"`
}

type SystemParams struct {
	API map[string]ApiURL `json:"api,omitempty"`
}

type ApiURL struct {
	URL string `json:"url"`
}

// SetApiURL records the resolved URL of a claim, replacing any previous value.
func (c *MfeConfig) SetApiURL(claimName, url string) {
	if c.SystemParams == nil {
		c.SystemParams = &SystemParams{}
	}
	if c.SystemParams.API == nil {
		c.SystemParams.API = make(map[string]ApiURL)
	}
	c.SystemParams.API[claimName] = ApiURL{URL: url}
}

// RemoveApiURL drops the entry of a claim and reports whether it was present.
func (c *MfeConfig) RemoveApiURL(claimName string) bool {
	if c.SystemParams == nil {
		return false
	}
	if _, ok := c.SystemParams.API[claimName]; !ok {
		return false
	}
	delete(c.SystemParams.API, claimName)
	return true
}

// ApiURL returns the cached URL of a claim.
func (c *MfeConfig) ApiURL(claimName string) (string, bool) {
	if c == nil || c.SystemParams == nil {
		return "", false
	}
	entry, ok := c.SystemParams.API[claimName]
	return entry.URL, ok
}
